package request

import (
	"encoding/json"
	"fmt"
	"io"
	netmail "net/mail"

	"github.com/Anotida-Much/task-manager/internal/model"
)

// ValidationError reports a single offending field. Handlers surface it
// as a 400 with the field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// DecodeJSON decodes a request body into dst, rejecting unknown fields.
func DecodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return invalid("body", "invalid JSON payload")
	}
	return nil
}

// Register is the POST /api/auth/register payload.
type Register struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (r *Register) Validate() error {
	if r.Email == "" {
		return invalid("email", "email is required")
	}
	if _, err := netmail.ParseAddress(r.Email); err != nil {
		return invalid("email", "email must be a valid email address")
	}
	if len(r.Password) < 6 {
		return invalid("password", "password must be at least 6 characters")
	}
	if len(r.Name) < 2 || len(r.Name) > 255 {
		return invalid("name", "name must be between 2 and 255 characters")
	}
	return nil
}

// Login is the POST /api/auth/login payload.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *Login) Validate() error {
	if r.Email == "" {
		return invalid("email", "email is required")
	}
	if _, err := netmail.ParseAddress(r.Email); err != nil {
		return invalid("email", "email must be a valid email address")
	}
	if r.Password == "" {
		return invalid("password", "password is required")
	}
	return nil
}

// CreateTask is the POST /api/tasks payload.
type CreateTask struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func (r *CreateTask) Validate() error {
	if len(r.Title) < 1 || len(r.Title) > 255 {
		return invalid("title", "title must be between 1 and 255 characters")
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		return invalid("description", "description must be at most 1000 characters")
	}
	if r.Status != nil && !model.TaskStatus(*r.Status).Valid() {
		return invalid("status", "status must be one of pending, in-progress, completed")
	}
	if r.Priority != nil && !model.TaskPriority(*r.Priority).Valid() {
		return invalid("priority", "priority must be one of low, medium, high")
	}
	return nil
}

// Params converts a validated payload into store parameters.
func (r *CreateTask) Params() model.CreateTask {
	params := model.CreateTask{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Status != nil {
		params.Status = model.TaskStatus(*r.Status)
	}
	if r.Priority != nil {
		params.Priority = model.TaskPriority(*r.Priority)
	}
	return params
}

// UpdateTask is the PUT /api/tasks/{id} payload. Absent fields are left
// untouched on the stored task.
type UpdateTask struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
}

func (r *UpdateTask) Validate() error {
	if r.Title != nil && (len(*r.Title) < 1 || len(*r.Title) > 255) {
		return invalid("title", "title must be between 1 and 255 characters")
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		return invalid("description", "description must be at most 1000 characters")
	}
	if r.Status != nil && !model.TaskStatus(*r.Status).Valid() {
		return invalid("status", "status must be one of pending, in-progress, completed")
	}
	if r.Priority != nil && !model.TaskPriority(*r.Priority).Valid() {
		return invalid("priority", "priority must be one of low, medium, high")
	}
	return nil
}

// Params converts a validated payload into store parameters.
func (r *UpdateTask) Params() model.UpdateTask {
	params := model.UpdateTask{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.Status != nil {
		status := model.TaskStatus(*r.Status)
		params.Status = &status
	}
	if r.Priority != nil {
		priority := model.TaskPriority(*r.Priority)
		params.Priority = &priority
	}
	return params
}

// ListTasks carries the parsed query parameters of GET /api/tasks.
type ListTasks struct {
	Status   string
	Priority string
	Page     int
	Limit    int
}

func (r *ListTasks) Validate() error {
	if r.Status != "" && !model.TaskStatus(r.Status).Valid() {
		return invalid("status", "status must be one of pending, in-progress, completed")
	}
	if r.Priority != "" && !model.TaskPriority(r.Priority).Valid() {
		return invalid("priority", "priority must be one of low, medium, high")
	}
	return nil
}
