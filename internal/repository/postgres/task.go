package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/Anotida-Much/task-manager/internal/model"
)

var _ model.TaskStore = (*TaskRepository)(nil)

const taskColumns = "id, title, description, status, priority, user_id, created_at, updated_at"

type TaskRepository struct {
	db *Connection
}

func NewTaskRepository(db *Connection) *TaskRepository {
	return &TaskRepository{
		db: db,
	}
}

func (r *TaskRepository) Create(ctx context.Context, userID int64, params model.CreateTask) (model.Task, error) {
	status := params.Status
	if status == "" {
		status = model.StatusPending
	}
	priority := params.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	query := `INSERT INTO tasks (title, description, status, priority, user_id)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + taskColumns

	var task model.Task
	err := r.db.QueryRow(ctx, query,
		params.Title, params.Description, status, priority, userID,
	).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&task.UserID, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id, userID int64) (model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	var task model.Task
	err := r.db.QueryRow(ctx, query, id, userID).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&task.UserID, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to get task by id: %w", err)
	}

	return task, nil
}

// ListPaginated returns one page of the owner's tasks plus the total
// matching count before pagination. The two reads are independent and
// run concurrently, each on its own pooled connection.
func (r *TaskRepository) ListPaginated(ctx context.Context, userID int64, filter model.TaskFilter, page, limit int) (model.TaskPage, error) {
	pageQuery, pageArgs, countQuery, countArgs := buildListQueries(userID, filter, page, limit)

	var (
		tasks []model.Task
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := r.db.Query(gctx, pageQuery, pageArgs...)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var task model.Task
			err := rows.Scan(
				&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
				&task.UserID, &task.CreatedAt, &task.UpdatedAt,
			)
			if err != nil {
				return fmt.Errorf("failed to scan task: %w", err)
			}
			tasks = append(tasks, task)
		}
		return rows.Err()
	})
	g.Go(func() error {
		if err := r.db.QueryRow(gctx, countQuery, countArgs...).Scan(&total); err != nil {
			return fmt.Errorf("failed to count tasks: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return model.TaskPage{}, err
	}

	if tasks == nil {
		// Empty pages marshal as [] rather than null.
		tasks = []model.Task{}
	}

	return model.TaskPage{Tasks: tasks, Total: total}, nil
}

func (r *TaskRepository) Update(ctx context.Context, id, userID int64, params model.UpdateTask) (model.Task, error) {
	if params.Empty() {
		// Nothing to change; behave as a read without touching updated_at.
		return r.GetByID(ctx, id, userID)
	}

	query, args := buildUpdateQuery(id, userID, params)

	var task model.Task
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Priority,
		&task.UserID, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Task{}, model.ErrNotFound
		}
		return model.Task{}, fmt.Errorf("failed to update task: %w", err)
	}

	return task, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete task: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// buildListQueries produces the page and count statements for an
// owner-scoped listing. Filters only ever append placeholders; values
// always travel as bound arguments.
func buildListQueries(userID int64, filter model.TaskFilter, page, limit int) (pageQuery string, pageArgs []any, countQuery string, countArgs []any) {
	var where strings.Builder
	where.WriteString("WHERE user_id = $1")
	args := []any{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		fmt.Fprintf(&where, " AND status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		fmt.Fprintf(&where, " AND priority = $%d", len(args))
	}

	countQuery = "SELECT COUNT(*) FROM tasks " + where.String()
	countArgs = args

	pageArgs = append(append([]any{}, args...), limit, (page-1)*limit)
	pageQuery = fmt.Sprintf(
		"SELECT %s FROM tasks %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d",
		taskColumns, where.String(), len(args)+1, len(args)+2,
	)

	return pageQuery, pageArgs, countQuery, countArgs
}

// buildUpdateQuery produces a SET clause covering exactly the supplied
// fields, bumping updated_at alongside them.
func buildUpdateQuery(id, userID int64, params model.UpdateTask) (string, []any) {
	var set []string
	var args []any

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Title != nil {
		appendSet("title", *params.Title)
	}
	if params.Description != nil {
		appendSet("description", *params.Description)
	}
	if params.Status != nil {
		appendSet("status", *params.Status)
	}
	if params.Priority != nil {
		appendSet("priority", *params.Priority)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id, userID)
	query := fmt.Sprintf(
		"UPDATE tasks SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args)-1, len(args), taskColumns,
	)

	return query, args
}
