//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/task-tracker/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with server-assigned fields.
	// A taken username yields ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByUsername returns the user including its password hash.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindUserByID returns the user without its password hash.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TaskRepository persists tasks. Every method is scoped to one owner:
// a task that belongs to another user is reported as ErrTaskNotFound.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	ListTasks(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	GetTask(ctx context.Context, taskID, userID int64) (models.Task, error)
	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)
	SetTaskStatus(ctx context.Context, taskID, userID int64, status models.TaskStatus) (models.Task, error)
	DeleteTask(ctx context.Context, taskID, userID int64) (models.Task, error)
}

// ErrorClassificator decides whether a driver error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
