package response

import (
	"movie-review-api/internal/data/entity"
)

type MovieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterURL   string `json:"poster_url"`
	Description string `json:"description"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:          movie.ID,
		Title:       movie.Title,
		PosterURL:   movie.PosterURL,
		Description: movie.Description,
	}
}

// CatalogMovieResponse is catalog metadata merged with the local id.
type CatalogMovieResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterURL   string `json:"poster_url"`
	Description string `json:"description"`
	Year        string `json:"year"`
}

// MovieDetailsResponse merges catalog metadata with locally stored reviews.
type MovieDetailsResponse struct {
	Movie   CatalogMovieResponse `json:"movie"`
	Reviews []ReviewResponse     `json:"reviews"`
}
