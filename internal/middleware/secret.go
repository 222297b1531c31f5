package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	PprofSecretHeader   = "X-Pprof-Secret"
	MetricsSecretHeader = "X-Metrics-Secret"
)

var errUnauthorized = map[string]string{"error": "unauthorized"}

// SecretHeader guards a route group with a shared secret. An empty secret
// leaves the group open.
func SecretHeader(header, secret string) echo.MiddlewareFunc {
	secretBytes := []byte(secret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if secret == "" {
				return next(c)
			}
			provided := c.Request().Header.Get(header)
			if subtle.ConstantTimeCompare([]byte(provided), secretBytes) != 1 {
				return c.JSON(http.StatusUnauthorized, errUnauthorized)
			}
			return next(c)
		}
	}
}

func PprofAuth(secret string) echo.MiddlewareFunc {
	return SecretHeader(PprofSecretHeader, secret)
}

func MetricsAuth(secret string) echo.MiddlewareFunc {
	return SecretHeader(MetricsSecretHeader, secret)
}
