// Package callable implements the callable RPC envelope used between the mobile
// client and the server: requests are POSTed as {"data": ...}, successes come
// back as {"result": ...} and failures as {"error": {"status", "message"}}.
package callable

import (
	"context"
	"encoding/json"

	"bumpti_backend/platform/apperr"
	"bumpti_backend/platform/httpkit"
	"bumpti_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

const msgBadRequest = "Bad Request"

// Request is the inbound envelope.
type Request struct {
	Data json.RawMessage `json:"data"`
}

// Response is the success envelope.
type Response struct {
	Result interface{} `json:"result"`
}

// Func is the shape of a callable implementation.
type Func[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Handle adapts fn to a gin handler speaking the callable envelope.
// A missing or null data field decodes as the zero request.
func Handle[Req any, Resp any](name string, log *logger.Logger, fn Func[Req, Resp]) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var envelope Request
		if err := c.ShouldBindJSON(&envelope); err != nil {
			httpkit.Abort(c, apperr.InvalidArgument(msgBadRequest))
			return
		}

		var req Req
		if len(envelope.Data) > 0 && string(envelope.Data) != "null" {
			if err := json.Unmarshal(envelope.Data, &req); err != nil {
				httpkit.Abort(c, apperr.InvalidArgument(msgBadRequest))
				return
			}
		}

		resp, err := fn(ctx, req)
		if err != nil {
			log.WithContext(ctx).CallableError(name, apperr.GetKind(err).String(), err)
			httpkit.HandleError(c, err)
			return
		}

		httpkit.OK(c, Response{Result: resp})
	}
}
