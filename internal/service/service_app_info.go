package service

import (
	"context"

	"github.com/avolkhin/phototeka/internal/config"
	"github.com/avolkhin/phototeka/internal/logger"
)

// appInfoService exposes build metadata of the running catalog server. The
// version string is fixed at startup from configuration.
type appInfoService struct {
	appVersion string

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService from the app configuration.
// A missing version is a deployment mistake, so construction fails instead
// of serving an empty string.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		logger:     logger,
	}, nil
}

// GetAppVersion returns the configured build version.
func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
