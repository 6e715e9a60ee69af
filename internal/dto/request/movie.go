package request

type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required"`
	PosterURL   string `json:"poster_url" validate:"required"`
	Description string `json:"description" validate:"required"`
}
