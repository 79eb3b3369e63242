package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"weather-app/pkg/log"
)

func newObservedEcho(t *testing.T) (*echo.Echo, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	log.Replace(zap.New(core))
	t.Cleanup(func() { log.Replace(log.New("info", "weather-app", io.Discard)) })

	e := echo.New()
	SetupRequestLogger(e)
	e.GET("/weather-app/home/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/weather-app/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return e, logs
}

func TestRequestLoggerLogsWithRequestID(t *testing.T) {
	e, logs := newObservedEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather-app/home/s1", nil))

	requestID := rec.Header().Get(echo.HeaderXRequestID)
	require.NotEmpty(t, requestID)
	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, requestID, fields["request_id"])
	assert.Equal(t, "/weather-app/home/s1", fields["uri"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
}

func TestRequestLoggerSkipsHealth(t *testing.T) {
	e, logs := newObservedEcho(t)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/weather-app/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Zero(t, logs.Len())
}
