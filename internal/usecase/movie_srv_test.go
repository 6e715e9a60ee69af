package usecase

import (
	"context"
	"testing"
	"time"

	"movie-review-api/internal/catalog"
	"movie-review-api/internal/data/entity"
	"movie-review-api/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMovieService_CreateMovie(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		create: func(_ context.Context, movie *entity.Movie) error {
			movie.ID = 1
			return nil
		},
	}
	service := NewMovieService(movieRepo, &fakeReviewRepo{}, &fakeCatalog{}, zap.NewNop())

	got, err := service.CreateMovie(context.Background(), &request.CreateMovieRequest{
		Title:       "Inception",
		PosterURL:   "http://img/inception.jpg",
		Description: "Dreams.",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Inception", got.Title)
	assert.Equal(t, "http://img/inception.jpg", got.PosterURL)
	assert.Equal(t, "Dreams.", got.Description)
}

func TestMovieService_GetMovies_EmptyStore(t *testing.T) {
	movieRepo := &fakeMovieRepo{
		findAll: func(_ context.Context) ([]*entity.Movie, error) {
			return nil, nil
		},
	}
	service := NewMovieService(movieRepo, &fakeReviewRepo{}, &fakeCatalog{}, zap.NewNop())

	got, err := service.GetMovies(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMovieService_DeleteMovie(t *testing.T) {
	t.Run("returns the prior state", func(t *testing.T) {
		movieRepo := &fakeMovieRepo{
			delete: func(_ context.Context, id int64) (*entity.Movie, error) {
				return &entity.Movie{ID: id, Title: "Heat", PosterURL: "http://img/heat.jpg", Description: "LA."}, nil
			},
		}
		service := NewMovieService(movieRepo, &fakeReviewRepo{}, &fakeCatalog{}, zap.NewNop())

		got, err := service.DeleteMovie(context.Background(), 4)

		require.NoError(t, err)
		assert.Equal(t, int64(4), got.ID)
		assert.Equal(t, "Heat", got.Title)
	})

	t.Run("missing row", func(t *testing.T) {
		movieRepo := &fakeMovieRepo{
			delete: func(_ context.Context, _ int64) (*entity.Movie, error) {
				return nil, nil
			},
		}
		service := NewMovieService(movieRepo, &fakeReviewRepo{}, &fakeCatalog{}, zap.NewNop())

		_, err := service.DeleteMovie(context.Background(), 999)

		assert.ErrorIs(t, err, ErrMovieNotFound)
	})
}

func TestMovieService_GetMovieDetails(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("merges catalog metadata with local reviews", func(t *testing.T) {
		cat := &fakeCatalog{
			fetchMovie: func(_ context.Context, id int64) (*catalog.Movie, error) {
				require.Equal(t, int64(603), id)
				return &catalog.Movie{
					Title:       "The Matrix",
					PosterURL:   "http://img/matrix.jpg",
					Description: "Simulation.",
					Year:        "1999",
				}, nil
			},
		}
		reviewRepo := &fakeReviewRepo{
			findByMovieID: func(_ context.Context, movieID int64) ([]*entity.Review, error) {
				require.Equal(t, int64(603), movieID)
				return []*entity.Review{
					{ID: 5, UserID: 1, Username: "alice", MovieID: 603, Comment: "Great.", Rating: 9, CreatedAt: createdAt},
				}, nil
			},
		}
		service := NewMovieService(&fakeMovieRepo{}, reviewRepo, cat, zap.NewNop())

		got, err := service.GetMovieDetails(context.Background(), 603)

		require.NoError(t, err)
		assert.Equal(t, int64(603), got.Movie.ID)
		assert.Equal(t, "The Matrix", got.Movie.Title)
		assert.Equal(t, "1999", got.Movie.Year)
		require.Len(t, got.Reviews, 1)
		assert.Equal(t, "alice", got.Reviews[0].Username)
		assert.Equal(t, 9, got.Reviews[0].Rating)
	})

	t.Run("catalog miss passes through", func(t *testing.T) {
		cat := &fakeCatalog{
			fetchMovie: func(_ context.Context, _ int64) (*catalog.Movie, error) {
				return nil, catalog.ErrNotFound
			},
		}
		service := NewMovieService(&fakeMovieRepo{}, &fakeReviewRepo{}, cat, zap.NewNop())

		_, err := service.GetMovieDetails(context.Background(), 999)

		assert.ErrorIs(t, err, catalog.ErrNotFound)
	})

	t.Run("movie with no reviews serializes an empty list", func(t *testing.T) {
		cat := &fakeCatalog{
			fetchMovie: func(_ context.Context, _ int64) (*catalog.Movie, error) {
				return &catalog.Movie{Title: "The Matrix"}, nil
			},
		}
		reviewRepo := &fakeReviewRepo{
			findByMovieID: func(_ context.Context, _ int64) ([]*entity.Review, error) {
				return nil, nil
			},
		}
		service := NewMovieService(&fakeMovieRepo{}, reviewRepo, cat, zap.NewNop())

		got, err := service.GetMovieDetails(context.Background(), 603)

		require.NoError(t, err)
		assert.NotNil(t, got.Reviews)
		assert.Empty(t, got.Reviews)
	})
}
