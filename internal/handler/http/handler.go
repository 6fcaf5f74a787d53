package http

import (
	"time"

	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/logger"
	"github.com/MKhiriev/task-tracker/internal/service"
)

type Handler struct {
	services *service.Services

	requestTimeout     time.Duration
	corsAllowedOrigins []string

	// healthObservers are told the outcome of every /ping.
	healthObservers []func(serving bool)

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:           services,
		requestTimeout:     cfg.RequestTimeout,
		corsAllowedOrigins: cfg.CORSAllowedOrigins,
		logger:             logger,
	}
}

// OnHealthChange registers fn to be called with the database status each
// time /ping is served.
func (h *Handler) OnHealthChange(fn func(serving bool)) {
	h.healthObservers = append(h.healthObservers, fn)
}
