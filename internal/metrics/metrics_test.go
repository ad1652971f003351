package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsByRouteTemplate(t *testing.T) {
	m := New("user-service")
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/user/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/api/v1/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "nope")
	})

	for _, path := range []string{"/api/v1/user/1", "/api/v1/user/2", "/api/v1/fail"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/user/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/fail", "400")))
}

func TestObserveLookup(t *testing.T) {
	m := New("user-service")
	m.ObserveLookup(LookupFound, 10*time.Millisecond)
	m.ObserveLookup(LookupFailed, time.Second)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DepartmentLookups.WithLabelValues(LookupFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DepartmentLookups.WithLabelValues(LookupFailed)))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveLookup(LookupMissing, time.Millisecond) })
}

func TestHandler(t *testing.T) {
	m := New("department-service")
	m.ObserveLookup(LookupMissing, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `department_lookups_total{result="missing",service="department-service"} 1`))
}
