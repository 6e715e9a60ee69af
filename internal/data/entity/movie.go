package entity

type Movie struct {
	ID          int64  `db:"id"`
	Title       string `db:"title"`
	PosterURL   string `db:"poster_url"`
	Description string `db:"description"`
}
