package router

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/semaphore"

	apperrors "staffdir/internal/errors"
)

// InFlightLimit bounds the number of requests handled at once. A request that
// cannot get a slot within wait fails with apperrors.ErrUnavailable.
func InFlightLimit(max int64, wait time.Duration) echo.MiddlewareFunc {
	sem := semaphore.NewWeighted(max)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), wait)
			err := sem.Acquire(ctx, 1)
			cancel()
			if err != nil {
				return fmt.Errorf("%w: no free worker within %s", apperrors.ErrUnavailable, wait)
			}
			defer sem.Release(1)
			return next(c)
		}
	}
}
