package onboarding

import (
	apphttp "bumpti_backend/internal/http"
	"bumpti_backend/platform/kv"
	"bumpti_backend/platform/logger"
)

// Module wires the onboarding HTTP routes.
type Module struct {
	handler *Handler
	service *Service
}

func NewModule(store kv.Store, log *logger.Logger) *Module {
	svc := NewService(store, log)
	return &Module{handler: NewHandler(svc), service: svc}
}

// Service returns the onboarding service for external use.
func (m *Module) Service() *Service {
	return m.service
}

func (m *Module) Name() string {
	return "onboarding"
}

func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/onboarding/steps", m.handler.GetSteps)

	protected := ctx.Protected.Group("/onboarding")
	protected.POST("/complete", m.handler.Complete)
	protected.GET("/status", m.handler.Status)
}

var _ apphttp.Module = (*Module)(nil)
