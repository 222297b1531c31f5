package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"chaosshare/internal/metrics"
	"chaosshare/internal/middleware"
	"chaosshare/internal/middleware/mocks"
)

func captureMetric(t *testing.T) (*mocks.MockHTTPRecorder, *metrics.HTTPMetric) {
	t.Helper()
	rec := mocks.NewMockHTTPRecorder(t)
	captured := &metrics.HTTPMetric{}
	rec.EXPECT().RecordHTTP(mock.Anything).
		Run(func(m metrics.HTTPMetric) {
			*captured = m
		}).Return().Once()
	return rec, captured
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.RemoteAddr = "192.168.1.1:12345"
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	return resp
}

func TestMetrics_SuccessfulRequest(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.POST("/api/v1/shares", func(c echo.Context) error {
		return c.String(http.StatusCreated, "ok")
	})

	serve(e, http.MethodPost, "/api/v1/shares")

	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/v1/shares", captured.Path)
	assert.Equal(t, http.StatusCreated, captured.StatusCode)
	assert.GreaterOrEqual(t, captured.DurationMs, 0.0)
	assert.LessOrEqual(t, captured.DurationMs, 1000.0)
	assert.Equal(t, "192.168.1.1", captured.ClientIP)
	assert.Empty(t, captured.Error)
}

func TestMetrics_ErrorStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{
			name:       "plain error",
			err:        errors.New("something went wrong"),
			wantStatus: http.StatusInternalServerError,
			wantError:  "something went wrong",
		},
		{
			name:       "http error",
			err:        echo.NewHTTPError(http.StatusNotFound, "not found"),
			wantStatus: http.StatusNotFound,
			wantError:  "code=404, message=not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, captured := captureMetric(t)

			e := echo.New()
			e.Use(middleware.Metrics(rec))
			e.GET("/fail", func(c echo.Context) error {
				return tt.err
			})

			serve(e, http.MethodGet, "/fail")

			assert.Equal(t, tt.wantStatus, captured.StatusCode)
			assert.Equal(t, tt.wantError, captured.Error)
		})
	}
}

func TestMetrics_DifferentMethods(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rec, captured := captureMetric(t)

			e := echo.New()
			e.Use(middleware.Metrics(rec))
			e.Add(method, "/api/v1/shares", func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})

			serve(e, method, "/api/v1/shares")

			require.NotZero(t, captured.Method)
			assert.Equal(t, method, captured.Method)
		})
	}
}

func TestMetrics_PathTemplate(t *testing.T) {
	rec, captured := captureMetric(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec))
	e.GET("/s/:code", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	serve(e, http.MethodGet, "/s/AB12CD34")

	assert.Equal(t, "/s/:code", captured.Path)
}

func TestMetrics_SkipsPrefixes(t *testing.T) {
	rec := mocks.NewMockHTTPRecorder(t)

	e := echo.New()
	e.Use(middleware.Metrics(rec, "/metrics", "/debug/pprof"))
	e.GET("/metrics", func(c echo.Context) error {
		return c.String(http.StatusOK, "# HELP")
	})

	resp := serve(e, http.MethodGet, "/metrics")

	assert.Equal(t, http.StatusOK, resp.Code)
	rec.AssertNotCalled(t, "RecordHTTP", mock.Anything)
}
