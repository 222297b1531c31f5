package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"chaosshare/internal/config"
)

const ownerIDKey = "owner_id"

var (
	errMissingToken = map[string]string{"error": "missing bearer token"}
	errInvalidToken = map[string]string{"error": "invalid token"}

	ErrEmptySubject = errors.New("token has no subject")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)

// Auth verifies an HS256 bearer token and stores its subject as the owner id.
// With an empty secret every token is rejected.
func Auth(cfg *config.AuthConfig, logger *slog.Logger) echo.MiddlewareFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}
	parser := jwt.NewParser(opts...)
	key := []byte(cfg.JWTSecret)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, errMissingToken)
			}

			var claims jwt.RegisteredClaims
			_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
				if len(key) == 0 {
					return nil, ErrEmptySecret
				}
				return key, nil
			})
			if err == nil && claims.Subject == "" {
				err = ErrEmptySubject
			}
			if err != nil {
				logger.Debug("rejected token",
					slog.String("path", c.Path()),
					slog.String("error", err.Error()))
				return c.JSON(http.StatusUnauthorized, errInvalidToken)
			}

			SetOwnerID(c, claims.Subject)
			return next(c)
		}
	}
}

func SetOwnerID(c echo.Context, ownerID string) {
	c.Set(ownerIDKey, ownerID)
}

// OwnerID returns the subject set by Auth, or "" on unauthenticated routes.
func OwnerID(c echo.Context) string {
	id, _ := c.Get(ownerIDKey).(string)
	return id
}

// IssueToken signs an owner token accepted by Auth with the same config.
func IssueToken(cfg *config.AuthConfig, subject string, ttl time.Duration) (string, error) {
	if cfg.JWTSecret == "" {
		return "", ErrEmptySecret
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    cfg.Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{cfg.Audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
}
