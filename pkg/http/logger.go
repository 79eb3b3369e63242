package http

import (
	"time"

	"go.uber.org/zap"

	"weather-app/pkg/log"
)

// HTTPLogger receives request/response events from the client.
type HTTPLogger interface {
	// LogRequest is called right before the request is sent
	LogRequest(method, url string)

	// LogResponseSuccess is called after a 2xx response was read
	LogResponseSuccess(method, url string, httpStatus int, latency time.Duration)

	// LogResponseError is called after a transport failure (httpStatus 0) or a non-2xx response
	LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error)
}

// NopLogger discards every event.
type NopLogger struct{}

func (NopLogger) LogRequest(string, string) {}
func (NopLogger) LogResponseSuccess(string, string, int, time.Duration) {}
func (NopLogger) LogResponseError(string, string, int, string, time.Duration, error) {}

// ZapLogger writes client events through pkg/log.
type ZapLogger struct {
	Client string
}

func (l ZapLogger) LogRequest(method, url string) {
	log.Debug("outbound request",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url))
}

func (l ZapLogger) LogResponseSuccess(method, url string, httpStatus int, latency time.Duration) {
	log.Debug("outbound response",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
}

func (l ZapLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error) {
	log.Warn("outbound request failed",
		zap.String("client", l.Client),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.String("response_body", responseBody),
		zap.Duration("latency", latency),
		zap.Error(err))
}
