package service

import (
	"github.com/avolkhin/phototeka/internal/config"
	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/store"
)

// Services bundles every business-logic service the HTTP layer depends on.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	AlbumService   AlbumService
	PhotoService   PhotoService
	TagService     TagService
	AppInfoService AppInfoService
}

// NewServices wires all services to the given storages and configuration.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.Users, cfg.App, logger),
		UserService:    NewUserService(storages.Users, storages.Media, logger),
		AlbumService:   NewAlbumService(storages.Albums, storages.Photos, storages.Users, logger),
		PhotoService:   NewPhotoService(storages.Photos, storages.Albums, storages.Tags, storages.Users, storages.Media, logger),
		TagService:     NewTagService(storages.Tags, logger),
		AppInfoService: appInfoService,
	}, nil
}
