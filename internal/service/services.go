package service

import (
	"github.com/MKhiriev/beyond-catalog/internal/adapter"
	"github.com/MKhiriev/beyond-catalog/internal/config"
	"github.com/MKhiriev/beyond-catalog/internal/logger"
	"github.com/MKhiriev/beyond-catalog/internal/store"
	"github.com/MKhiriev/beyond-catalog/models"
)

type Services struct {
	UserService      UserService
	ObjectService    ObjectService
	FavouriteService FavouriteService
	AppInfoService   AppInfoService
}

// NewServices builds every service over storages, each behind its
// validation wrapper.
func NewServices(storages *store.Storages, verifier adapter.IdentityVerifier, buildInfo models.AppBuildInfo, cfg config.App, logger *logger.Logger) *Services {
	hasher := NewBcryptHasher(cfg.PasswordHashCost)

	return &Services{
		UserService: NewUserValidationService().
			Wrap(NewUserService(storages.UserRepository, hasher, verifier, logger)),
		ObjectService: NewObjectValidationService().
			Wrap(NewObjectService(storages.ObjectRepository, logger)),
		FavouriteService: NewFavouriteValidationService().
			Wrap(NewFavouriteService(storages.UserRepository, logger)),
		AppInfoService: NewAppInfoService(buildInfo, cfg, logger),
	}
}
