package service

import (
	"context"
	"fmt"

	"github.com/Anotida-Much/task-manager/internal/logger"
	"github.com/Anotida-Much/task-manager/internal/model"
)

type Task struct {
	taskStore model.TaskStore
	logger    *logger.Logger
}

func NewTask(taskStore model.TaskStore, logger *logger.Logger) *Task {
	return &Task{
		taskStore: taskStore,
		logger:    logger,
	}
}

func (t *Task) Create(ctx context.Context, userID int64, params model.CreateTask) (model.Task, error) {
	task, err := t.taskStore.Create(ctx, userID, params)
	if err != nil {
		t.logger.Error("Task service: failed to create task",
			"user_id", userID,
			"error", err.Error())
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	t.logger.Info("Task service: task created", "user_id", userID, "task_id", task.ID)

	return task, nil
}

// List returns one page of the caller's tasks. Page and limit are
// clamped to sane minimums so a hostile query string cannot produce a
// negative offset.
func (t *Task) List(ctx context.Context, userID int64, filter model.TaskFilter, page, limit int) (model.TaskPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	result, err := t.taskStore.ListPaginated(ctx, userID, filter, page, limit)
	if err != nil {
		t.logger.Error("Task service: failed to list tasks",
			"user_id", userID,
			"error", err.Error())
		return model.TaskPage{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	return result, nil
}

func (t *Task) Update(ctx context.Context, id, userID int64, params model.UpdateTask) (model.Task, error) {
	task, err := t.taskStore.Update(ctx, id, userID, params)
	if err != nil {
		// ErrNotFound passes through untouched; owner mismatch must stay
		// indistinguishable from absence.
		return model.Task{}, err
	}

	t.logger.Info("Task service: task updated", "user_id", userID, "task_id", id)

	return task, nil
}

func (t *Task) Delete(ctx context.Context, id, userID int64) error {
	deleted, err := t.taskStore.Delete(ctx, id, userID)
	if err != nil {
		t.logger.Error("Task service: failed to delete task",
			"user_id", userID,
			"task_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if !deleted {
		return model.ErrNotFound
	}

	t.logger.Info("Task service: task deleted", "user_id", userID, "task_id", id)

	return nil
}
