package entity

import (
	"time"
)

// Review belongs to exactly one user. MovieID may reference a movie absent
// from the local store since movies primarily live in the external catalog.
type Review struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Comment   string    `db:"comment"`
	Rating    int       `db:"rating"`
	CreatedAt time.Time `db:"created_at"`

	// Username is eager-loaded from the owning user when reading; it is not
	// a column of the reviews table.
	Username string `db:"username"`
}
