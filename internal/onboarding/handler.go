package onboarding

import (
	"strconv"

	"bumpti_backend/platform/apperr"
	"bumpti_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// StatusResponse is returned by the status and complete endpoints.
type StatusResponse struct {
	HasOnboarded bool `json:"hasOnboarded"`
}

// GetSteps handles GET /api/v1/onboarding/steps?location=true&notifications=false
func (h *Handler) GetSteps(c *gin.Context) {
	location, err := queryBool(c, "location")
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	notifications, err := queryBool(c, "notifications")
	if err != nil {
		httpkit.HandleError(c, err)
		return
	}
	httpkit.OK(c, ComputeSteps(location, notifications))
}

// Complete handles POST /api/v1/onboarding/complete
func (h *Handler) Complete(c *gin.Context) {
	identity := httpkit.GetIdentity(c)
	if err := h.svc.Complete(c.Request.Context(), identity.UserID()); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, StatusResponse{HasOnboarded: true})
}

// Status handles GET /api/v1/onboarding/status
func (h *Handler) Status(c *gin.Context) {
	identity := httpkit.GetIdentity(c)
	done, err := h.svc.HasOnboarded(c.Request.Context(), identity.UserID())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, StatusResponse{HasOnboarded: done})
}

// queryBool reads an optional boolean query parameter; absent means false.
func queryBool(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperr.InvalidArgument(name + " must be a boolean")
	}
	return v, nil
}
