package service

import (
	"context"

	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/validators"
	"github.com/MKhiriev/task-tracker/models"
)

// TaskValidationService checks request DTOs before they reach the wrapped
// TaskService. Operations without a payload pass straight through.
type TaskValidationService struct {
	inner     TaskService
	validator validators.Validator
}

func NewTaskValidationService(validator validators.Validator) TaskServiceWrapper {
	return &TaskValidationService{
		validator: validator,
	}
}

func (v *TaskValidationService) CreateTask(ctx context.Context, userID int64, request models.TaskRequest) (models.Task, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Task{}, err
	}
	return v.inner.CreateTask(ctx, userID, request)
}

func (v *TaskValidationService) ListTasks(ctx context.Context, userID int64, query models.TaskListQuery) ([]models.Task, error) {
	if err := v.validate(ctx, query); err != nil {
		return nil, err
	}
	return v.inner.ListTasks(ctx, userID, query)
}

func (v *TaskValidationService) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return v.inner.GetTask(ctx, userID, taskID)
}

func (v *TaskValidationService) UpdateTask(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error) {
	if err := v.validate(ctx, request); err != nil {
		return models.Task{}, err
	}
	return v.inner.UpdateTask(ctx, userID, taskID, request)
}

func (v *TaskValidationService) SetTaskStatus(ctx context.Context, userID, taskID int64, request models.StatusRequest) (models.Task, error) {
	if request.Status == nil {
		return v.inner.SetTaskStatus(ctx, userID, taskID, request)
	}
	if err := v.validate(ctx, request); err != nil {
		return models.Task{}, err
	}
	return v.inner.SetTaskStatus(ctx, userID, taskID, request)
}

func (v *TaskValidationService) DeleteTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	return v.inner.DeleteTask(ctx, userID, taskID)
}

func (v *TaskValidationService) Wrap(wrapped TaskService) TaskService {
	v.inner = wrapped
	return v
}

func (v *TaskValidationService) validate(ctx context.Context, request any) error {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("task request rejected")
		return err
	}
	return nil
}
