package handler

import (
	"context"
	"net/http"

	"github.com/Anotida-Much/task-manager/internal/api/http/request"
	"github.com/Anotida-Much/task-manager/internal/logger"
	"github.com/Anotida-Much/task-manager/internal/model"
	"github.com/Anotida-Much/task-manager/internal/service"
)

// AuthService defines registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (service.AuthResult, error)
	Login(ctx context.Context, email, password string) (service.AuthResult, error)
	Profile(ctx context.Context, userID int64) (model.UserPublic, error)
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService    AuthService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, contextManager model.ContextManager, logger *logger.Logger) *Auth {
	return &Auth{
		authService:    authService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register creates an account and returns the user with a fresh token.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req request.Register
	if err := request.DecodeJSON(r.Body, &req); err != nil {
		handleError(w, err, "")
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err, "")
		return
	}

	result, err := h.authService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		h.logger.Error("Auth handler: registration failed",
			"email", req.Email,
			"error", err.Error())
		handleError(w, err, "")
		return
	}

	writeSuccess(w, http.StatusCreated, result, "User registered successfully")
}

// Login verifies credentials and returns the user with a fresh token.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req request.Login
	if err := request.DecodeJSON(r.Body, &req); err != nil {
		handleError(w, err, "")
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err, "")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Info("Auth handler: login failed", "email", req.Email)
		handleError(w, err, "")
		return
	}

	writeSuccess(w, http.StatusOK, result, "Login successful")
}

// Profile returns the authenticated user.
func (h *Auth) Profile(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.authService.Profile(r.Context(), identity.UserID)
	if err != nil {
		handleError(w, err, "User not found")
		return
	}

	writeSuccess(w, http.StatusOK, user, "Profile retrieved successfully")
}
