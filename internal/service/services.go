package service

import (
	"fmt"

	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/store"
	"github.com/MKhiriev/task-tracker/internal/validators"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	TaskService    TaskService
	AppInfoService AppInfoService
}

// NewServices wires every service to its repository. pinger is used by the
// health checks; it is normally the *store.DB shared by the repositories.
func NewServices(storages *store.Storages, pinger Pinger, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator()

	appInfoService, err := NewAppInfoService(cfg.App, pinger, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	authService, err := NewAuthService(storages.UserRepository, validator, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating auth service: %w", err)
	}

	taskService := NewTaskValidationService(validator).
		Wrap(NewTaskService(storages.TaskRepository, logger))

	return &Services{
		AuthService:    authService,
		UserService:    NewUserService(storages.UserRepository, logger),
		TaskService:    taskService,
		AppInfoService: appInfoService,
	}, nil
}
