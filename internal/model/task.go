package model

import (
	"context"
	"time"
)

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"

	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether s is one of the known statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Valid reports whether p is one of the known priorities.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a stored task owned by a single user.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	UserID      int64        `json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateTask carries the fields for a new task. Zero-valued Status and
// Priority fall back to their defaults at the store.
type CreateTask struct {
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
}

// UpdateTask carries a partial update. Nil fields are left untouched.
type UpdateTask struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
}

// Empty reports whether the update carries no fields at all.
func (u UpdateTask) Empty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil && u.Priority == nil
}

// TaskFilter narrows a task listing. Empty fields match everything.
type TaskFilter struct {
	Status   TaskStatus
	Priority TaskPriority
}

// TaskPage is one page of an owner-scoped listing plus the total number
// of rows matching the filter before pagination.
type TaskPage struct {
	Tasks []Task
	Total int64
}

// TaskStore defines owner-scoped persistence operations for tasks. Every
// method filters on the owner's user ID; a task owned by somebody else is
// indistinguishable from a missing one.
type TaskStore interface {
	Create(ctx context.Context, userID int64, params CreateTask) (Task, error)
	GetByID(ctx context.Context, id, userID int64) (Task, error)
	ListPaginated(ctx context.Context, userID int64, filter TaskFilter, page, limit int) (TaskPage, error)
	Update(ctx context.Context, id, userID int64, params UpdateTask) (Task, error)
	Delete(ctx context.Context, id, userID int64) (bool, error)
}
