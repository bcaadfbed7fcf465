package service

import (
	"context"

	"github.com/MKhiriev/beyond-catalog/internal/config"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo. The configured version is used when
// the binary was built without a version.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) AppInfoService {
	if !buildInfo.HasVersion() && cfg.Version != "" {
		buildInfo = models.NewAppBuildInfo(cfg.Version, buildInfo.BuildDate(), buildInfo.BuildCommit())
	}

	return &appInfoService{
		buildInfo: buildInfo,
		logger:    logger,
	}
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.VersionResponse {
	return s.buildInfo.Response()
}
