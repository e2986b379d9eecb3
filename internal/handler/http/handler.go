package http

import (
	"github.com/avolkhin/phototeka/internal/logger"
	"github.com/avolkhin/phototeka/internal/service"
)

// Handler owns the HTTP surface of the photo catalog: auth, users, albums,
// photos and tags. Routes are registered in Init.
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs the handler around the given service bundle.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("photo API handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}
