package wire

import (
	"movie-review-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireUser configures user account and login routes
func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Post("/users", userHandler.CreateUser)
	r.Get("/users", userHandler.GetUsers)
	r.Get("/users/{id}", userHandler.GetUserByID)
	r.Put("/users/{id}", userHandler.UpdateUser)

	r.Post("/login", userHandler.Login)
}
