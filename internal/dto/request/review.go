package request

// Rating is a pointer so that an explicit 0 survives the "is it absent" check;
// required on a pointer only rejects nil.
type CreateReviewRequest struct {
	UserID  int64  `json:"user_id" validate:"required"`
	MovieID int64  `json:"movie_id" validate:"required"`
	Comment string `json:"comment" validate:"notblank"`
	Rating  *int   `json:"rating" validate:"required"`
}

// UpdateReviewRequest may change comment and rating only; user_id and
// movie_id are immutable after creation.
type UpdateReviewRequest struct {
	Comment *string `json:"comment,omitempty"`
	Rating  *int    `json:"rating,omitempty"`
}
