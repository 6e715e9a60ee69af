package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler) {
	r.Post("/reviews", reviewHandler.CreateReview)
	r.Put("/reviews/{id}", reviewHandler.UpdateReview)
	r.Delete("/reviews/{id}", reviewHandler.DeleteReview)

	// Enriched list: one catalog lookup per review
	r.Get("/users/{id}/reviews", reviewHandler.GetUserReviews)
}
