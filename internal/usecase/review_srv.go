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

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, userID int64) ([]response.UserReviewItem, error)
	UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int64) (*response.ReviewResponse, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	catalog    catalog.Client
	log        *zap.Logger
}

func NewReviewService(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	catalogClient catalog.Client,
	log *zap.Logger,
) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		catalog:    catalogClient,
		log:        log.With(zap.String("service", "review")),
	}
}

// CreateReview checks that the owning user exists; movie_id is taken as-is
// because movies primarily live in the external catalog.
func (s *reviewService) CreateReview(ctx context.Context, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		s.log.Error("Failed to check review owner", zap.Error(err), zap.Int64("user_id", req.UserID))
		return nil, fmt.Errorf("check user %d: %w", req.UserID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	review := &entity.Review{
		UserID:   req.UserID,
		MovieID:  req.MovieID,
		Comment:  req.Comment,
		Rating:   *req.Rating,
		Username: user.Username,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int64("user_id", req.UserID),
			zap.Int64("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int64("review_id", review.ID),
		zap.Int64("user_id", review.UserID),
		zap.Int64("movie_id", review.MovieID),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// GetUserReviews makes one catalog call per review, no batching or
// deduplication even when a movie id repeats. A failed lookup degrades the
// title to "Unknown" instead of failing the request.
func (s *reviewService) GetUserReviews(ctx context.Context, userID int64) ([]response.UserReviewItem, error) {
	reviews, err := s.reviewRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to get user reviews", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("get reviews for user %d: %w", userID, err)
	}

	items := make([]response.UserReviewItem, 0, len(reviews))
	for _, review := range reviews {
		movieTitle := "Unknown"
		if movie, err := s.catalog.FetchMovie(ctx, review.MovieID); err == nil {
			movieTitle = movie.Title
		}

		items = append(items, response.UserReviewItem{
			ID:         review.ID,
			MovieID:    review.MovieID,
			MovieTitle: movieTitle,
			Comment:    review.Comment,
			Rating:     review.Rating,
		})
	}

	return items, nil
}

// UpdateReview applies only the fields present in the request.
func (s *reviewService) UpdateReview(ctx context.Context, id int64, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find review for update", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		s.log.Error("Failed to update review", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("update review %d: %w", id, err)
	}

	s.log.Info("Review updated", zap.Int64("review_id", id))

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// DeleteReview removes the row and returns its prior state.
func (s *reviewService) DeleteReview(ctx context.Context, id int64) (*response.ReviewResponse, error) {
	review, err := s.reviewRepo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find review for delete", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("get review %d: %w", id, err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	if err := s.reviewRepo.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete review", zap.Error(err), zap.Int64("review_id", id))
		return nil, fmt.Errorf("delete review %d: %w", id, err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}
