package response

import (
	"time"

	"movie-review-api/internal/data/entity"
)

type ReviewResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	MovieID   int64     `json:"movie_id"`
	Comment   string    `json:"comment"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		UserID:    review.UserID,
		Username:  review.Username,
		MovieID:   review.MovieID,
		Comment:   review.Comment,
		Rating:    review.Rating,
		CreatedAt: review.CreatedAt,
	}
}

// UserReviewItem is one entry of a user's review list, enriched with the
// catalog title (degrades to "Unknown" when the catalog lookup fails).
type UserReviewItem struct {
	ID         int64  `json:"id"`
	MovieID    int64  `json:"movie_id"`
	MovieTitle string `json:"movie_title"`
	Comment    string `json:"comment"`
	Rating     int    `json:"rating"`
}
