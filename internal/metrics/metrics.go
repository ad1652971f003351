package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Department lookup results.
const (
	LookupFound   = "found"
	LookupMissing = "missing"
	LookupFailed  = "failed"
)

// Metrics holds the Prometheus collectors of one service. Each instance owns
// its registry so several services can run in one process.
type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	DepartmentLookups        *prometheus.CounterVec
	DepartmentLookupDuration prometheus.Histogram
}

// New creates the collectors for the named service.
func New(service string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)
	labels := prometheus.Labels{"service": service}

	return &Metrics{
		registry: reg,
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: labels,
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request duration in seconds",
				ConstLabels: labels,
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "route"},
		),
		DepartmentLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "department_lookups_total",
				Help:        "Outbound department lookups by result",
				ConstLabels: labels,
			},
			[]string{"result"},
		),
		DepartmentLookupDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:        "department_lookup_duration_seconds",
				Help:        "Outbound department lookup duration in seconds",
				ConstLabels: labels,
				Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the response so the status is final
				c.Error(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := strconv.Itoa(c.Response().Status)
			m.RequestsTotal.WithLabelValues(c.Request().Method, route, status).Inc()
			m.RequestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// ObserveLookup records one department lookup. Safe on a nil receiver.
func (m *Metrics) ObserveLookup(result string, d time.Duration) {
	if m == nil {
		return
	}
	m.DepartmentLookups.WithLabelValues(result).Inc()
	m.DepartmentLookupDuration.Observe(d.Seconds())
}
