// Package handler exposes the places services as callables.
package handler

import (
	"bumpti_backend/internal/places/service"
	"bumpti_backend/internal/places/transport"
	"bumpti_backend/platform/callable"
	"bumpti_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

const (
	NearbyPlacesName = transport.NearbyPlacesCallable
	PlacesByIDsName  = transport.PlacesByIDsCallable
)

// Handler serves the places callables.
type Handler struct {
	svc *service.Service
	log *logger.Logger
}

func New(svc *service.Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// RegisterRoutes mounts POST /<name> for each callable on group.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/"+NearbyPlacesName, callable.Handle[transport.NearbyPlacesRequest, transport.PlacesResponse](NearbyPlacesName, h.log, h.svc.NearbyPlaces))
	group.POST("/"+PlacesByIDsName, callable.Handle[transport.PlacesByIDsRequest, transport.PlacesResponse](PlacesByIDsName, h.log, h.svc.PlacesByIDs))
}
