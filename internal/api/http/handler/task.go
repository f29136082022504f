package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Anotida-Much/task-manager/internal/api/http/request"
	"github.com/Anotida-Much/task-manager/internal/logger"
	"github.com/Anotida-Much/task-manager/internal/model"
)

// TaskService defines owner-scoped task operations.
type TaskService interface {
	Create(ctx context.Context, userID int64, params model.CreateTask) (model.Task, error)
	List(ctx context.Context, userID int64, filter model.TaskFilter, page, limit int) (model.TaskPage, error)
	Update(ctx context.Context, id, userID int64, params model.UpdateTask) (model.Task, error)
	Delete(ctx context.Context, id, userID int64) error
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Task handles HTTP endpoints for task management.
type Task struct {
	taskService    TaskService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewTask creates a new Task handler.
func NewTask(taskService TaskService, contextManager model.ContextManager, logger *logger.Logger) *Task {
	return &Task{
		taskService:    taskService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns one page of the caller's tasks with pagination metadata.
func (h *Task) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	req := request.ListTasks{
		Status:   r.URL.Query().Get("status"),
		Priority: r.URL.Query().Get("priority"),
		Page:     intQueryParam(r, "page", defaultPage),
		Limit:    intQueryParam(r, "limit", defaultLimit),
	}
	if err := req.Validate(); err != nil {
		handleError(w, err, "")
		return
	}

	filter := model.TaskFilter{
		Status:   model.TaskStatus(req.Status),
		Priority: model.TaskPriority(req.Priority),
	}
	page, err := h.taskService.List(r.Context(), identity.UserID, filter, req.Page, req.Limit)
	if err != nil {
		handleError(w, err, "")
		return
	}

	writeJSON(w, http.StatusOK, TaskListResponse{
		Success:    true,
		Data:       page.Tasks,
		Total:      page.Total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages(page.Total, req.Limit),
		Message:    "Tasks retrieved successfully",
	})
}

// Create stores a new task owned by the caller.
func (h *Task) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req request.CreateTask
	if err := request.DecodeJSON(r.Body, &req); err != nil {
		handleError(w, err, "")
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err, "")
		return
	}

	task, err := h.taskService.Create(r.Context(), identity.UserID, req.Params())
	if err != nil {
		handleError(w, err, "")
		return
	}

	writeSuccess(w, http.StatusCreated, task, "Task created successfully")
}

// Update applies a partial update to one of the caller's tasks.
func (h *Task) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	taskID, ok := taskIDFromPath(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req request.UpdateTask
	if err := request.DecodeJSON(r.Body, &req); err != nil {
		handleError(w, err, "")
		return
	}
	if err := req.Validate(); err != nil {
		handleError(w, err, "")
		return
	}

	task, err := h.taskService.Update(r.Context(), taskID, identity.UserID, req.Params())
	if err != nil {
		handleError(w, err, "Task not found")
		return
	}

	writeSuccess(w, http.StatusOK, task, "Task updated successfully")
}

// Delete removes one of the caller's tasks.
func (h *Task) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		WriteError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	taskID, ok := taskIDFromPath(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.taskService.Delete(r.Context(), taskID, identity.UserID); err != nil {
		handleError(w, err, "Task not found")
		return
	}

	writeSuccess(w, http.StatusOK, nil, "Task deleted successfully")
}

func taskIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func intQueryParam(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || value < 1 {
		return fallback
	}
	return value
}

func totalPages(total int64, limit int) int64 {
	if limit < 1 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
