package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews. A rating of 0 is accepted; only an
// absent rating fails validation.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := utils.ValidateStruct(&req); msg != "" {
		utils.ResponseError(w, http.StatusBadRequest, msg)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "create review")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, review)
}

// GetUserReviews handles GET /users/{id}/reviews
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "id")
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	reviews, err := h.service.GetUserReviews(r.Context(), userID)
	if err != nil {
		h.writeError(w, err, "get user reviews")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, reviews)
}

// UpdateReview handles PUT /reviews/{id}
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	review, err := h.service.UpdateReview(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "update review")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, review)
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid review id")
		return
	}

	review, err := h.service.DeleteReview(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "delete review")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, review)
}

// writeError maps service errors to the contract's status and body
func (h *ReviewHandler) writeError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - user not found", zap.Error(err))
		utils.ResponseError(w, http.StatusNotFound, "User not found")

	case errors.Is(err, usecase.ErrReviewNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseError(w, http.StatusNotFound, "Review not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "Internal server error")
	}
}
