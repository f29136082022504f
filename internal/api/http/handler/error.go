package handler

import (
	"errors"
	"net/http"

	"github.com/Anotida-Much/task-manager/internal/api/http/request"
	"github.com/Anotida-Much/task-manager/internal/model"
)

// handleError maps domain failures to HTTP statuses. notFoundMessage
// names the resource for 404s; everything unrecognized becomes a
// scrubbed 500.
func handleError(w http.ResponseWriter, err error, notFoundMessage string) {
	var validationErr *request.ValidationError

	switch {
	case errors.As(err, &validationErr):
		WriteError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, model.ErrEmailTaken):
		WriteError(w, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, model.ErrInvalidCredentials):
		WriteError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, model.ErrNotFound):
		WriteError(w, http.StatusNotFound, notFoundMessage)
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
