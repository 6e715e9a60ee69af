package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-review-api/internal/data/repository"
	"movie-review-api/internal/dto/request"
	"movie-review-api/internal/usecase"
	"movie-review-api/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if msg := utils.ValidateStruct(&req); msg != "" {
		utils.ResponseError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "create user")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, user)
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		h.writeError(w, err, "get users")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, users)
}

// GetUserByID handles GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "get user by id")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{id}. An empty JSON body is a valid no-op.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		h.writeError(w, err, "update user")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, user)
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.ResponseError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		h.writeError(w, err, "login")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, resp)
}

// writeError maps service errors to the contract's status and body
func (h *UserHandler) writeError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, repository.ErrUsernameExists), errors.Is(err, repository.ErrEmailExists):
		h.log.Warn(operation+" failed - duplicate", zap.Error(err))
		utils.ResponseError(w, http.StatusConflict, err.Error())

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseError(w, http.StatusNotFound, "User not found")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseError(w, http.StatusUnauthorized, "Invalid email or password")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseError(w, http.StatusInternalServerError, "Internal server error")
	}
}
