package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Post("/movies", movieHandler.CreateMovie)
	r.Get("/movies", movieHandler.GetMovies)
	r.Delete("/movies/{id}", movieHandler.DeleteMovie)

	// Enriched details: catalog metadata merged with local reviews
	r.Get("/api/movies/{id}", movieHandler.GetMovieDetails)
}
