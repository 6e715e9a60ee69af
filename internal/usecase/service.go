package usecase

import (
	"movie-review-api/internal/catalog"
	"movie-review-api/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	User   UserService
	Movie  MovieService
	Review ReviewService
}

func NewService(repo *repository.Repository, catalogClient catalog.Client, log *zap.Logger) *Service {
	return &Service{
		User:   NewUserService(repo.User, log),
		Movie:  NewMovieService(repo.Movie, repo.Review, catalogClient, log),
		Review: NewReviewService(repo.Review, repo.User, catalogClient, log),
	}
}
