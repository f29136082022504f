package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Anotida-Much/task-manager/internal/model"
)

// Response is the uniform envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TaskListResponse is the envelope for paginated task listings, with
// pagination metadata alongside the page itself.
type TaskListResponse struct {
	Success    bool         `json:"success"`
	Data       []model.Task `json:"data"`
	Total      int64        `json:"total"`
	Page       int          `json:"page"`
	Limit      int          `json:"limit"`
	TotalPages int64        `json:"totalPages"`
	Message    string       `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already on the wire; an encode failure here can
	// only be logged by the caller, not reported to the client.
	_ = json.NewEncoder(w).Encode(body)
}

func writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, Response{Success: true, Data: data, Message: message})
}

// WriteError writes a failure envelope. Exported for middleware that
// terminates requests before any handler runs.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Error: message})
}
