// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard grpc.health.v1 service for the task
// tracker. The reported status follows the database ping.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/service"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "tasktracker.TaskTracker"

// Handler is the root gRPC transport handler.
//
// It owns the health server registered on the gRPC server and keeps its
// status in sync with the database.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as
// NOT_SERVING until the first [Handler.Check] or [Handler.SetServing].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches the health and reflection services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// SetServing updates the reported status of the overall server and of
// [ServiceName].
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}

// Check pings the database and publishes the outcome.
func (h *Handler) Check(ctx context.Context) bool {
	err := h.services.AppInfoService.Ping(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "*Handler.Check").Msg("database is unreachable, reporting NOT_SERVING")
	}

	h.SetServing(err == nil)
	return err == nil
}

// Shutdown sets every status to NOT_SERVING and ignores further updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
