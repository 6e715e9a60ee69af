// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-review-api/internal/adaptor"
	"movie-review-api/internal/catalog"
	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/middleware"
	"movie-review-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, catalogClient catalog.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, catalogClient, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	}))

	// Apply routes
	wireUser(r, handler.User)
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review)

	// Basic routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Movie Review API!"))
	})
	r.Get("/status", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusOK, map[string]string{"message": "Server is up"})
	})

	return r
}
