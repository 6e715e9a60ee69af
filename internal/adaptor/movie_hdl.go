package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-review-api/internal/catalog"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// CreateMovie handles POST /movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := utils.ValidateStruct(&req); msg != "" {
		utils.ResponseError(w, http.StatusBadRequest, msg)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "create movie")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

// GetMovies handles GET /movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		h.writeError(w, err, "get movies")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movies)
}

// DeleteMovie handles DELETE /movies/{id}
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	movie, err := h.service.DeleteMovie(r.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrMovieNotFound) {
			// Deliberate quirk: this route answers 200 with an error body
			// when the movie is missing, unlike every other not-found path.
			// Flagged for the product owner; do not normalize to 404 here.
			utils.ResponseJSON(w, http.StatusOK, utils.ErrorResponse{Error: "Movie not found"})
			return
		}
		h.writeError(w, err, "delete movie")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, movie)
}

// GetMovieDetails handles GET /api/movies/{id}, merging catalog metadata with
// locally stored reviews.
func (h *MovieHandler) GetMovieDetails(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid movie id")
		return
	}

	details, err := h.service.GetMovieDetails(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			utils.ResponseError(w, http.StatusNotFound, "Movie not found on TMDb")
			return
		}
		h.writeError(w, err, "get movie details")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, details)
}

// writeError maps service errors to the contract's status and body
func (h *MovieHandler) writeError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrMovieNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseError(w, http.StatusNotFound, "Movie not found")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "Internal server error")
	}
}
