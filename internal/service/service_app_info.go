package service

import (
	"context"

	"github.com/MKhiriev/task-tracker/internal/config"
	"github.com/MKhiriev/task-tracker/internal/logger"
)

type appInfoService struct {
	appVersion string
	pinger     Pinger

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, pinger Pinger, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		pinger:     pinger,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Ping checks that the database answers.
func (s *appInfoService) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return ErrNoPinger
	}

	if err := s.pinger.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "appInfoService.Ping").Msg("database is unreachable")
		return err
	}
	return nil
}
