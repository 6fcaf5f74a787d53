// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the task-tracker REST API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/task-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// TaskTrackerAdapter talks to the task-tracker server. Implementations
// keep the bearer token received from Login and attach it to every
// authenticated request.
type TaskTrackerAdapter interface {
	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// Signup registers a new account. It does not log in.
	Signup(ctx context.Context, request models.SignupRequest) (models.SignupResponse, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	// Me returns the profile of the authenticated user.
	Me(ctx context.Context) (models.PublicUser, error)

	CreateTask(ctx context.Context, request models.TaskRequest) (models.Task, error)
	ListTasks(ctx context.Context, query models.TaskListQuery) ([]models.Task, error)
	GetTask(ctx context.Context, taskID int64) (models.Task, error)

	// UpdateTask replaces every field of the task.
	UpdateTask(ctx context.Context, taskID int64, request models.UpdateTaskRequest) (models.Task, error)

	// CompleteTask sets the task status; a nil request.Status means completed.
	CompleteTask(ctx context.Context, taskID int64, request models.StatusRequest) (models.Task, error)

	// DeleteTask removes the task and returns its last state.
	DeleteTask(ctx context.Context, taskID int64) (models.Task, error)
}
