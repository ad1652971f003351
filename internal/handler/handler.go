package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "staffdir/internal/errors"
	"staffdir/internal/response"
)

type idParam struct {
	ID uint `param:"id" validate:"required,gt=0"`
}

// Hello godoc
// @Summary Greeting
// @Tags meta
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /hello [get]
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Success("Hello"))
}

func bindID(c echo.Context) (uint, error) {
	var p idParam
	if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", apperrors.ErrInvalidRequest, c.Param("id"))
	}
	if err := c.Validate(&p); err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", apperrors.ErrInvalidRequest, c.Param("id"))
	}
	return p.ID, nil
}

// bindBody decodes the request body into a *T. An empty or null body yields nil.
func bindBody[T any](c echo.Context) (*T, error) {
	var payload *T
	if err := (&echo.DefaultBinder{}).BindBody(c, &payload); err != nil {
		return nil, fmt.Errorf("%w: malformed request body", apperrors.ErrInvalidRequest)
	}
	return payload, nil
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, response.Success(data))
}
