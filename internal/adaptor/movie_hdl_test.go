package adaptor

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"movie-review-api/internal/catalog"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/dto/response"
	"movie-review-api/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubMovieService struct {
	createMovie     func(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	getMovies       func(ctx context.Context) ([]response.MovieResponse, error)
	deleteMovie     func(ctx context.Context, id int64) (*response.MovieResponse, error)
	getMovieDetails func(ctx context.Context, id int64) (*response.MovieDetailsResponse, error)
}

func (s *stubMovieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	return s.createMovie(ctx, req)
}

func (s *stubMovieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	return s.getMovies(ctx)
}

func (s *stubMovieService) DeleteMovie(ctx context.Context, id int64) (*response.MovieResponse, error) {
	return s.deleteMovie(ctx, id)
}

func (s *stubMovieService) GetMovieDetails(ctx context.Context, id int64) (*response.MovieDetailsResponse, error) {
	return s.getMovieDetails(ctx, id)
}

func newMovieRouter(service usecase.MovieService) *chi.Mux {
	handler := NewMovieHandler(service, zap.NewNop())

	r := chi.NewRouter()
	r.Post("/movies", handler.CreateMovie)
	r.Get("/movies", handler.GetMovies)
	r.Delete("/movies/{id}", handler.DeleteMovie)
	r.Get("/api/movies/{id}", handler.GetMovieDetails)
	return r
}

func TestMovieHandler_CreateMovie(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		service    *stubMovieService
		wantStatus int
		wantBody   string
	}{
		{
			name: "created movie echoes the stored record",
			body: `{"title": "Inception", "poster_url": "http://img/inception.jpg", "description": "Dreams."}`,
			service: &stubMovieService{
				createMovie: func(_ context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
					return &response.MovieResponse{
						ID:          1,
						Title:       req.Title,
						PosterURL:   req.PosterURL,
						Description: req.Description,
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id": 1, "title": "Inception", "poster_url": "http://img/inception.jpg", "description": "Dreams."}`,
		},
		{
			name:       "missing title reported first",
			body:       `{"poster_url": "http://img/x.jpg", "description": "d"}`,
			service:    &stubMovieService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "title is required"}`,
		},
		{
			name:       "missing poster_url reported before description",
			body:       `{"title": "Inception"}`,
			service:    &stubMovieService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "poster_url is required"}`,
		},
		{
			name:       "missing description",
			body:       `{"title": "Inception", "poster_url": "http://img/x.jpg"}`,
			service:    &stubMovieService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "description is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMovieRouter(tt.service)

			req := httptest.NewRequest(http.MethodPost, "/movies", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestMovieHandler_GetMovies_Empty(t *testing.T) {
	router := newMovieRouter(&stubMovieService{
		getMovies: func(_ context.Context) ([]response.MovieResponse, error) {
			return []response.MovieResponse{}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestMovieHandler_DeleteMovie(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		service    *stubMovieService
		wantStatus int
		wantBody   string
	}{
		{
			name:   "deleted movie returns its prior state",
			target: "/movies/4",
			service: &stubMovieService{
				deleteMovie: func(_ context.Context, id int64) (*response.MovieResponse, error) {
					require.Equal(t, int64(4), id)
					return &response.MovieResponse{ID: 4, Title: "Heat", PosterURL: "http://img/heat.jpg", Description: "LA."}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"id": 4, "title": "Heat", "poster_url": "http://img/heat.jpg", "description": "LA."}`,
		},
		{
			// Missing movie answers 200 with an error body on this route only.
			name:   "missing movie keeps the 200 error body",
			target: "/movies/999",
			service: &stubMovieService{
				deleteMovie: func(_ context.Context, _ int64) (*response.MovieResponse, error) {
					return nil, usecase.ErrMovieNotFound
				},
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"error": "Movie not found"}`,
		},
		{
			name:       "non-integer id",
			target:     "/movies/abc",
			service:    &stubMovieService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "invalid movie id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMovieRouter(tt.service)

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestMovieHandler_GetMovieDetails(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		service    *stubMovieService
		wantStatus int
		wantBody   string
	}{
		{
			name:   "catalog metadata merged with reviews",
			target: "/api/movies/603",
			service: &stubMovieService{
				getMovieDetails: func(_ context.Context, id int64) (*response.MovieDetailsResponse, error) {
					require.Equal(t, int64(603), id)
					return &response.MovieDetailsResponse{
						Movie: response.CatalogMovieResponse{
							ID:          603,
							Title:       "The Matrix",
							PosterURL:   "http://img/matrix.jpg",
							Description: "Simulation.",
							Year:        "1999",
						},
						Reviews: []response.ReviewResponse{},
					}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantBody: `{
				"movie": {"id": 603, "title": "The Matrix", "poster_url": "http://img/matrix.jpg", "description": "Simulation.", "year": "1999"},
				"reviews": []
			}`,
		},
		{
			name:   "catalog miss",
			target: "/api/movies/999",
			service: &stubMovieService{
				getMovieDetails: func(_ context.Context, _ int64) (*response.MovieDetailsResponse, error) {
					return nil, catalog.ErrNotFound
				},
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error": "Movie not found on TMDb"}`,
		},
		{
			name:       "non-integer id",
			target:     "/api/movies/abc",
			service:    &stubMovieService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error": "invalid movie id"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newMovieRouter(tt.service)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
