package metrics

import (
	"creditAdvisor/internal/middleware"
	pkgmetrics "creditAdvisor/pkg/metrics"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// Middleware records latency and count per matched route. Unmatched paths
// share one label to keep cardinality bounded.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = middleware.StatusFor(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			labels := []string{c.Request().Method, route, strconv.Itoa(status)}
			pkgmetrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
			pkgmetrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()

			return err
		}
	}
}
