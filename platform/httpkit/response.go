// Package httpkit provides HTTP response utilities.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"net/http"

	"bumpti_backend/platform/apperr"

	"github.com/gin-gonic/gin"
)

// ErrorBody carries the wire status code and a caller-safe message.
type ErrorBody struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

const msgInternal = "internal error"

// JSON sends a JSON response with the given status code.
func JSON(c *gin.Context, status int, payload interface{}) {
	c.JSON(status, payload)
}

// OK sends a 200 OK response with the given payload.
func OK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

// Abort writes err as the response body and stops the handler chain.
func Abort(c *gin.Context, err *apperr.Error) {
	c.AbortWithStatusJSON(err.HTTPStatus(), ErrorResponse{Error: ErrorBody{
		Status:  err.Kind.String(),
		Message: err.Message,
		Details: err.Details,
	}})
}

// HandleError maps domain errors to HTTP responses.
// Typed *apperr.Error values keep their kind and message; anything else is
// reported as INTERNAL without leaking the underlying message.
// Returns true if an error was handled, false otherwise.
func HandleError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}

	domainErr, ok := apperr.As(err)
	if !ok {
		domainErr = apperr.Wrap(apperr.KindInternal, msgInternal, err)
	}

	Abort(c, domainErr)
	return true
}
