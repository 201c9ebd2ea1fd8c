package http

import (
	"time"

	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses.
// URLs handed to a logger are already redacted.
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a 2xx response
	LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency time.Duration)

	// LogResponseError is called after a non-2xx response or a transport failure (httpStatus 0)
	LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error)
}

// ZapHTTPLogger writes outbound traffic through pkg/log. Bodies are only logged at debug level.
type ZapHTTPLogger struct {
	Component string
}

var _ HTTPLogger = (*ZapHTTPLogger)(nil)

func (l *ZapHTTPLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug("Outbound request",
		zap.String("component", l.Component),
		zap.String("method", method),
		zap.String("url", url))
}

func (l *ZapHTTPLogger) LogResponseSuccess(method, url string, httpStatus int, responseBody string, latency time.Duration) {
	log.Info("Outbound request succeeded",
		zap.String("component", l.Component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency))
	log.Debug("Outbound response body", zap.String("component", l.Component), zap.String("body", responseBody))
}

func (l *ZapHTTPLogger) LogResponseError(method, url string, httpStatus int, responseBody string, latency time.Duration, err error) {
	log.Error("Outbound request failed",
		zap.String("component", l.Component),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Duration("latency", latency),
		zap.Int("body_size", len(responseBody)),
		zap.Error(err))
}
