package router

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"staffdir/internal/config"
	apperrors "staffdir/internal/errors"
	"staffdir/internal/handler"
	"staffdir/internal/logging"
	"staffdir/internal/metrics"
	"staffdir/internal/response"
	"staffdir/internal/tracing"
)

// APIPrefix is shared by both services.
const APIPrefix = "/api/v1"

// New builds an echo instance with the middleware and meta routes common to
// both services. service names the swagger doc instance and the log field.
func New(service string, cfg *config.Config, logger *zap.Logger, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.HTTPErrorHandler = ErrorHandler

	// metrics sit outside Recover so recovered panics are counted as 500s
	e.Use(m.Middleware())
	e.Use(middleware.Recover())
	e.Use(tracing.Middleware(logger))
	e.Use(requestLogger())
	e.Use(InFlightLimit(cfg.Server.MaxInFlight, cfg.Server.QueueTimeout))

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(m.Handler()))
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(service)))

	e.GET(APIPrefix+"/hello", handler.Hello)
	return e
}

// RegisterDepartment wires the department routes.
func RegisterDepartment(e *echo.Echo, h *handler.DepartmentHandler) {
	api := e.Group(APIPrefix)
	api.POST("/department", h.AddDepartment)
	api.PUT("/department/:id", h.UpdateDepartment)
	api.GET("/department", h.GetDepartments)
	api.GET("/department/:id", h.GetDepartment)
}

// RegisterUser wires the user routes.
func RegisterUser(e *echo.Echo, h *handler.UserHandler) {
	api := e.Group(APIPrefix)
	api.POST("/user", h.AddUser)
	api.PUT("/user/:id", h.UpdateUser)
	api.GET("/user", h.GetUsers)
	api.GET("/user/:id", h.GetUser)
}

// ErrorHandler writes every failure in the response envelope. Server-side
// failures are logged with their cause; caller errors only at info level.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *apperrors.HTTPError
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		httpErr = fromEchoError(echoErr)
	} else {
		httpErr = apperrors.MapErrorToHTTP(err)
	}

	log := logging.FromContext(c.Request().Context()).With(
		zap.String("method", c.Request().Method),
		zap.String("path", c.Path()),
		zap.Int("status", httpErr.StatusCode),
	)
	if httpErr.StatusCode >= http.StatusInternalServerError {
		log.Error("request failed", zap.Error(err))
	} else {
		log.Info("request rejected", zap.String("reason", err.Error()))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(httpErr.StatusCode)
	} else {
		err = c.JSON(httpErr.StatusCode, response.Failure(httpErr))
	}
	if err != nil {
		log.Error("write error response", zap.Error(err))
	}
}

func fromEchoError(he *echo.HTTPError) *apperrors.HTTPError {
	switch {
	case he.Code >= http.StatusInternalServerError:
		return apperrors.NewHTTPError(he.Code, apperrors.ErrInternal.Error(), apperrors.CodeInternal)
	case he.Code == http.StatusBadRequest:
		return apperrors.NewHTTPError(he.Code, fmt.Sprint(he.Message), apperrors.CodeInvalidRequest)
	case he.Code == http.StatusNotFound:
		return apperrors.NewHTTPError(he.Code, fmt.Sprint(he.Message), apperrors.CodeRouteNotFound)
	default:
		code := strings.ToUpper(strings.ReplaceAll(http.StatusText(he.Code), " ", "_"))
		return apperrors.NewHTTPError(he.Code, fmt.Sprint(he.Message), code)
	}
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logging.FromContext(c.Request().Context()).Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			)
			return nil
		},
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
