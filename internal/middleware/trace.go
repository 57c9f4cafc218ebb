package middleware

import (
	"creditAdvisor/business/prediction"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderTraceID = "X-Trace-ID"

// TraceID reuses the caller's X-Trace-ID or generates one, stores it in the
// request context and echoes it on the response.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(HeaderTraceID)
			if _, err := uuid.Parse(tid); err != nil {
				tid = uuid.NewString()
			}

			req := c.Request()
			c.SetRequest(req.WithContext(prediction.ContextWithTraceID(req.Context(), tid)))
			c.Response().Header().Set(HeaderTraceID, tid)

			return next(c)
		}
	}
}
