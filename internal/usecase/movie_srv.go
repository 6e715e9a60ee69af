package usecase

import (
	"context"
	"fmt"

	"movie-review-api/internal/catalog"
	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/dto/response"

	"go.uber.org/zap"
)

type MovieService interface {
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) (*response.MovieResponse, error)
	GetMovieDetails(ctx context.Context, id int64) (*response.MovieDetailsResponse, error)
}

type movieService struct {
	movieRepo  repository.MovieRepository
	reviewRepo repository.ReviewRepository
	catalog    catalog.Client
	log        *zap.Logger
}

func NewMovieService(
	movieRepo repository.MovieRepository,
	reviewRepo repository.ReviewRepository,
	catalogClient catalog.Client,
	log *zap.Logger,
) MovieService {
	return &movieService{
		movieRepo:  movieRepo,
		reviewRepo: reviewRepo,
		catalog:    catalogClient,
		log:        log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	movie := &entity.Movie{
		Title:       req.Title,
		PosterURL:   req.PosterURL,
		Description: req.Description,
	}

	if err := s.movieRepo.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int64("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.movieRepo.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, fmt.Errorf("get movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, 0, len(movies))
	for _, movie := range movies {
		movieResponses = append(movieResponses, response.MovieToResponse(movie))
	}

	return movieResponses, nil
}

// DeleteMovie removes the row and returns its prior state. Reviews for the
// movie are left in place; there is no cascade.
func (s *movieService) DeleteMovie(ctx context.Context, id int64) (*response.MovieResponse, error) {
	movie, err := s.movieRepo.Delete(ctx, id)
	if err != nil {
		s.log.Error("Failed to delete movie", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("delete movie %d: %w", id, err)
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// GetMovieDetails merges catalog metadata with locally stored reviews for the
// same numeric id. A failed catalog lookup surfaces as catalog.ErrNotFound,
// never as a server error.
func (s *movieService) GetMovieDetails(ctx context.Context, id int64) (*response.MovieDetailsResponse, error) {
	catalogMovie, err := s.catalog.FetchMovie(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := s.reviewRepo.FindByMovieID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get movie reviews", zap.Error(err), zap.Int64("movie_id", id))
		return nil, fmt.Errorf("get reviews for movie %d: %w", id, err)
	}

	reviewResponses := make([]response.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		reviewResponses = append(reviewResponses, response.ReviewToResponse(review))
	}

	return &response.MovieDetailsResponse{
		Movie: response.CatalogMovieResponse{
			ID:          id,
			Title:       catalogMovie.Title,
			PosterURL:   catalogMovie.PosterURL,
			Description: catalogMovie.Description,
			Year:        catalogMovie.Year,
		},
		Reviews: reviewResponses,
	}, nil
}
