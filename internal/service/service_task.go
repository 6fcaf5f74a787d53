package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/store"
	"github.com/MKhiriev/task-tracker/internal/validators"
	"github.com/MKhiriev/task-tracker/models"
)

type taskService struct {
	taskRepository store.TaskRepository

	logger *logger.Logger
}

// NewTaskService returns the TaskService that converts requests into
// models and hands them to the repository. It expects validated input;
// wrap it with NewTaskValidationService.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

func (s *taskService) CreateTask(ctx context.Context, userID int64, request models.TaskRequest) (models.Task, error) {
	task, err := taskFromRequest(request)
	if err != nil {
		return models.Task{}, err
	}
	task.UserID = userID

	created, err := s.taskRepository.CreateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("task creation failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("user_id", userID).Int64("task_id", created.ID).Msg("task created")
	return created, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID int64, query models.TaskListQuery) ([]models.Task, error) {
	filter, err := filterFromQuery(userID, query)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepository.ListTasks(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("task listing failed: %w", err)
	}
	return tasks, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	task, err := s.taskRepository.GetTask(ctx, taskID, userID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task lookup failed: %w", err)
	}
	return task, nil
}

// UpdateTask replaces every field of the task. Fields absent from the
// request are reset: empty title and description, pending status, no
// due date.
func (s *taskService) UpdateTask(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	task, err := taskFromRequest(request.TaskRequest)
	if err != nil {
		return models.Task{}, err
	}
	task.ID = taskID
	task.UserID = userID

	updated, err := s.taskRepository.UpdateTask(ctx, task)
	if err != nil {
		return models.Task{}, fmt.Errorf("task update failed: %w", err)
	}
	return updated, nil
}

// SetTaskStatus changes only the status. An absent status completes the task.
func (s *taskService) SetTaskStatus(ctx context.Context, userID, taskID int64, request models.StatusRequest) (models.Task, error) {
	status := models.TaskStatusCompleted
	if request.Status != nil {
		status = models.TaskStatus(*request.Status)
	}

	updated, err := s.taskRepository.SetTaskStatus(ctx, taskID, userID, status)
	if err != nil {
		return models.Task{}, fmt.Errorf("task status change failed: %w", err)
	}
	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	deleted, err := s.taskRepository.DeleteTask(ctx, taskID, userID)
	if err != nil {
		return models.Task{}, fmt.Errorf("task deletion failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("user_id", userID).Int64("task_id", taskID).Msg("task deleted")
	return deleted, nil
}

func taskFromRequest(request models.TaskRequest) (models.Task, error) {
	task := models.Task{
		Title:       deref(request.Title),
		Description: deref(request.Description),
		Status:      models.TaskStatusPending,
	}

	if request.Status != nil {
		task.Status = models.TaskStatus(*request.Status)
	}

	if request.DueDate != nil {
		due, _, err := validators.ParseDueDate(*request.DueDate)
		if err != nil {
			return models.Task{}, fieldError(validators.FieldDueDate, validators.ConstraintDateTime)
		}
		task.DueDate = &due
	}

	return task, nil
}

// filterFromQuery converts query-string filters. A date-only due date
// selects the whole day; a full timestamp matches exactly.
func filterFromQuery(userID int64, query models.TaskListQuery) (models.TaskFilter, error) {
	filter := models.TaskFilter{UserID: userID}

	if query.Status != "" {
		status := models.TaskStatus(query.Status)
		filter.Status = &status
	}

	if query.DueDate != "" {
		due, dateOnly, err := validators.ParseDueDate(query.DueDate)
		if err != nil {
			return models.TaskFilter{}, fieldError(validators.FieldDueDate, validators.ConstraintDateTime)
		}
		filter.DueFrom = &due
		if dateOnly {
			next := due.Add(24 * time.Hour)
			filter.DueTo = &next
		}
	}

	if query.Limit != "" {
		limit, err := validators.ParseNonNegativeInt(query.Limit)
		if err != nil {
			return models.TaskFilter{}, fieldError(validators.FieldLimit, validators.ConstraintNonNegativeInt)
		}
		filter.Limit = &limit
	}

	if query.Offset != "" {
		offset, err := validators.ParseNonNegativeInt(query.Offset)
		if err != nil {
			return models.TaskFilter{}, fieldError(validators.FieldOffset, validators.ConstraintNonNegativeInt)
		}
		filter.Offset = &offset
	}

	return filter, nil
}

func fieldError(field, constraint string) error {
	return validators.Errors{{Field: field, Constraint: constraint}}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
