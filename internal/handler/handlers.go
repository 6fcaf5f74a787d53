package handler

import (
	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/handler/grpc"
	"github.com/MKhiriev/task-tracker/internal/handler/http"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a handler for every configured transport. When both
// are enabled, every HTTP /ping also refreshes the gRPC health status.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	if handlers.HTTP != nil && handlers.GRPC != nil {
		handlers.HTTP.OnHealthChange(handlers.GRPC.SetServing)
	}

	return handlers, nil
}
