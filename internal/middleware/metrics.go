package middleware

import (
	"cmp"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"chaosshare/internal/metrics"
)

//go:generate go tool mockery

type HTTPRecorder interface {
	RecordHTTP(m metrics.HTTPMetric)
}

// Metrics records one HTTP metric per request, except for paths starting
// with one of skipPrefixes.
func Metrics(recorder HTTPRecorder, skipPrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, prefix := range skipPrefixes {
				if strings.HasPrefix(c.Request().URL.Path, prefix) {
					return next(c)
				}
			}

			start := time.Now()

			err := next(c)

			duration := time.Since(start)
			path := cmp.Or(c.Path(), "/")
			statusCode := c.Response().Status

			var errStr string
			if err != nil {
				errStr = err.Error()
				if he, ok := err.(*echo.HTTPError); ok {
					statusCode = he.Code
				} else if !c.Response().Committed {
					statusCode = http.StatusInternalServerError
				}
			}

			recorder.RecordHTTP(metrics.HTTPMetric{
				Time:       start,
				Method:     c.Request().Method,
				Path:       path,
				StatusCode: statusCode,
				DurationMs: float64(duration.Microseconds()) / 1000.0,
				ClientIP:   c.RealIP(),
				Error:      errStr,
			})

			return err
		}
	}
}
