// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the task tracker: account
// registration and login, token issuing, and owner-scoped task operations.
// Services validate request DTOs, convert them into models and delegate
// persistence to the store package.
package service

import (
	"context"

	"github.com/MKhiriev/task-tracker/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (models.PublicUser, error)
}

// TaskService operates on the tasks of one owner. userID always comes from
// the authenticated identity.
type TaskService interface {
	CreateTask(ctx context.Context, userID int64, request models.TaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, userID int64, query models.TaskListQuery) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, userID, taskID int64, request models.UpdateTaskRequest) (models.Task, error)
	SetTaskStatus(ctx context.Context, userID, taskID int64, request models.StatusRequest) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) (models.Task, error)
}

// TaskServiceWrapper defines middleware composition for TaskService.
// Implementations wrap an existing TaskService to add behavior such as
// validating.
type TaskServiceWrapper interface {
	Wrap(TaskService) TaskService // returns a decorated TaskService applying additional behavior
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Ping(ctx context.Context) error
}

// Pinger reports whether a backing resource is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
