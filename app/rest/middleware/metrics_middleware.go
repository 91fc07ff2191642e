package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"newsdesk/app/metrics"
)

// RequestMetrics records request counts and latencies per route.
func RequestMetrics() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			// c.Path() is the route template, not the raw URI, which keeps
			// the label cardinality bounded
			path := c.Path()
			method := c.Request().Method
			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			metrics.RequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
			metrics.RequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
