package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/models"
)

// taskRepository is the SQL implementation of [TaskRepository] over the
// "tasks" table.
//
// Ownership is part of every statement's WHERE clause, and every mutation
// is a single UPDATE/DELETE ... RETURNING, so there is no window between an
// ownership check and the write.
type taskRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// CreateTask inserts task and returns the stored row.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	query, args, err := r.buildCreateTaskQuery(task)
	if err != nil {
		log.Err(err).Str("func", "taskRepository.CreateTask").Msg("failed to build query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Task
	err = r.withRetry(ctx, func() (err error) {
		created, err = scanTask(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Stringer("classification", r.classify(err)).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListTasks returns the owner's tasks matching filter, ordered by id.
// An empty result is an empty, non-nil slice.
func (r *taskRepository) ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListTasksQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.ListTasks").
			Int64("user_id", filter.UserID).
			Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.withRetry(ctx, func() (err error) {
		rows, err = r.QueryContext(ctx, query, args...)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.ListTasks").
			Int64("user_id", filter.UserID).
			Stringer("classification", r.classify(err)).
			Msg("failed to execute query for listing tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 16)
	for rows.Next() {
		task, scanErr := scanTask(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "taskRepository.ListTasks").
				Int64("user_id", filter.UserID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).
			Str("func", "taskRepository.ListTasks").
			Int64("user_id", filter.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return tasks, nil
}

// GetTask returns the task with taskID if userID owns it.
func (r *taskRepository) GetTask(ctx context.Context, taskID, userID int64) (models.Task, error) {
	query, args, err := r.buildGetTaskQuery(taskID, userID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOwnedTask(ctx, "taskRepository.GetTask", taskID, userID, query, args)
}

// UpdateTask replaces title, description, status and due date of the task
// identified by task.ID if task.UserID owns it.
func (r *taskRepository) UpdateTask(ctx context.Context, task models.Task) (models.Task, error) {
	query, args, err := r.buildUpdateTaskQuery(task, r.now())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOwnedTask(ctx, "taskRepository.UpdateTask", task.ID, task.UserID, query, args)
}

// SetTaskStatus changes only the status of an owned task.
func (r *taskRepository) SetTaskStatus(ctx context.Context, taskID, userID int64, status models.TaskStatus) (models.Task, error) {
	query, args, err := r.buildSetTaskStatusQuery(taskID, userID, status, r.now())
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOwnedTask(ctx, "taskRepository.SetTaskStatus", taskID, userID, query, args)
}

// DeleteTask removes an owned task and returns it as it was.
func (r *taskRepository) DeleteTask(ctx context.Context, taskID, userID int64) (models.Task, error) {
	query, args, err := r.buildDeleteTaskQuery(taskID, userID)
	if err != nil {
		return models.Task{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryOwnedTask(ctx, "taskRepository.DeleteTask", taskID, userID, query, args)
}

// queryOwnedTask runs a statement returning at most one task row. No row
// means the task is missing or owned by someone else.
func (r *taskRepository) queryOwnedTask(ctx context.Context, funcName string, taskID, userID int64, query string, args []any) (models.Task, error) {
	log := logger.FromContext(ctx)

	var task models.Task
	err := r.withRetry(ctx, func() (err error) {
		task, err = scanTask(r.QueryRowContext(ctx, query, args...))
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().
			Str("func", funcName).
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Msg("task not found for owner")
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("task_id", taskID).
			Int64("user_id", userID).
			Stringer("classification", r.classify(err)).
			Msg("failed to execute task query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return task, nil
}
