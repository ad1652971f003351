package tracing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"staffdir/internal/logging"
)

// serve runs one request through the middleware and returns the trace id seen by the handler.
func serve(t *testing.T, e *echo.Echo, inbound string) (seen string, rec *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if inbound != "" {
		req.Header.Set(HeaderName, inbound)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String(), rec
}

func newEcho(logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.Use(Middleware(logger))
	e.GET("/probe", func(c echo.Context) error {
		ctx := c.Request().Context()
		logging.FromContext(ctx).Info("probe")
		return c.String(http.StatusOK, TraceID(ctx))
	})
	return e
}

func TestMiddleware_KeepsInboundTraceID(t *testing.T) {
	e := newEcho(zap.NewNop())

	seen, rec := serve(t, e, "trace-123")

	assert.Equal(t, "trace-123", seen)
	assert.Equal(t, "trace-123", rec.Header().Get(HeaderName))
}

func TestMiddleware_GeneratesDistinctUUIDs(t *testing.T) {
	e := newEcho(zap.NewNop())

	first, _ := serve(t, e, "")
	second, _ := serve(t, e, "")

	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	_, err = uuid.Parse(second)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestMiddleware_DoesNotLeakBetweenRequests(t *testing.T) {
	e := newEcho(zap.NewNop())

	_, _ = serve(t, e, "trace-a")
	seen, _ := serve(t, e, "")

	assert.NotEqual(t, "trace-a", seen)
}

func TestMiddleware_TagsRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := newEcho(zap.New(core))

	_, _ = serve(t, e, "trace-log")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "trace-log", logs.All()[0].ContextMap()[HeaderName])
}

func TestInject(t *testing.T) {
	h := http.Header{}
	Inject(context.Background(), h)
	assert.Empty(t, h.Get(HeaderName))

	Inject(WithTraceID(context.Background(), "abc"), h)
	assert.Equal(t, "abc", h.Get(HeaderName))
}
