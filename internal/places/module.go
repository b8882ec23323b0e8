// Package places provides the places bounded context module.
// This file defines the module that encapsulates all places setup.
package places

import (
	apphttp "bumpti_backend/internal/http"
	"bumpti_backend/internal/places/client"
	"bumpti_backend/internal/places/handler"
	"bumpti_backend/internal/places/service"
	"bumpti_backend/platform/config"
	"bumpti_backend/platform/logger"
	"bumpti_backend/platform/validator"
)

// Module is the places bounded context module.
type Module struct {
	service *service.Service
	handler *handler.Handler
}

// NewModule creates and initializes the places module. The module is always
// mounted; without a configured key every call fails with a precondition error.
func NewModule(cfg config.PlacesConfig, val *validator.Validator, log *logger.Logger) *Module {
	creds := service.FirstKey{service.StaticKey(cfg.GetGooglePlacesAPIKey())}
	if path := cfg.GetGooglePlacesAPIKeyFile(); path != "" {
		creds = append(creds, service.FileKey{Path: path})
	}
	if cfg.GetGooglePlacesAPIKey() == "" && cfg.GetGooglePlacesAPIKeyFile() == "" {
		log.Warn("places api key not configured: GOOGLE_PLACES_API_KEY and GOOGLE_PLACES_API_KEY_FILE are empty")
	}

	apiClient := client.New(cfg.GetPlacesBaseURL(), cfg.GetPlacesTimeout(), log)
	svc := service.New(apiClient, creds, val, log, cfg.GetPlacesTimeout())

	log.Info("places module initialized", "baseURL", cfg.GetPlacesBaseURL())

	return &Module{
		service: svc,
		handler: handler.New(svc, log),
	}
}

// Service returns the places service for external use.
func (m *Module) Service() PlacesService {
	return m.service
}

func (m *Module) Name() string {
	return "places"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	m.handler.RegisterRoutes(ctx.Callable)
}

var _ apphttp.Module = (*Module)(nil)
var _ PlacesService = (*service.Service)(nil)
