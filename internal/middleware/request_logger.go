package middleware

import (
	"strconv"
	"time"

	"campusPrint/pkg/logger"
	"campusPrint/pkg/metrics"

	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request line and feeds the HTTP prometheus
// instruments. The metrics path label is the route pattern, not the raw URL,
// so order ids do not explode the label space.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			elapsed := time.Since(start)

			logger.Info("request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration", elapsed.String(),
			)

			route := c.Path()
			if route == "" {
				route = req.URL.Path
			}
			metrics.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())
			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()

			return err
		}
	}
}
