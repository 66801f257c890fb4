package middleware

import (
	"github.com/labstack/echo/v4"

	xlog "github.com/vpena/go-payroll-disbursement/internal/common/log"
)

// Context attaches a correlation id to the request context so every log
// line emitted while serving the request can be tied back to it.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := xlog.SetContextFromHTTP(req.Context(), req)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
