// Package tracing carries the per-request correlation identifier from the
// inbound eventTraceId header into the request context, the request logger and
// outbound calls made while handling the request.
package tracing

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"staffdir/internal/logging"
)

// HeaderName is used both for inbound requests and for outbound calls.
const HeaderName = "eventTraceId"

type traceIDKey struct{}

// WithTraceID returns a copy of ctx carrying id.
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, id)
}

// TraceID returns the correlation identifier stored in ctx, or "".
func TraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// Inject copies the trace id from ctx onto an outbound header set.
// Nothing is written when ctx has no trace id.
func Inject(ctx context.Context, header http.Header) {
	if id := TraceID(ctx); id != "" {
		header.Set(HeaderName, id)
	}
}

// Middleware reads or generates the trace id for every request, echoes it on
// the response and stores it, together with a logger tagged with it, in the
// request context. The values live only as long as the request context.
func Middleware(base *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		TargetHeader: HeaderName,
		Generator:    uuid.NewString,
		RequestIDHandler: func(c echo.Context, id string) {
			req := c.Request()
			ctx := WithTraceID(req.Context(), id)
			ctx = logging.NewContext(ctx, base.With(zap.String(HeaderName, id)))
			c.SetRequest(req.WithContext(ctx))
		},
	})
}
