package http

import (
	"strings"

	"go-weather/pkg/log"

	"go.uber.org/zap"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {
}

func (noopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {
}

// ZapLogger writes outbound calls to the application logger. Query strings are
// dropped from logged URLs since they may carry credentials.
type ZapLogger struct{}

func (ZapLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug("http request", zap.String("method", method), zap.String("url", redactQuery(url)))
}

func (ZapLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, _ string, latency int64) {
	log.Info("http response",
		zap.String("method", method),
		zap.String("url", redactQuery(url)),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency))
}

func (ZapLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	log.Warn("http response error",
		zap.String("method", method),
		zap.String("url", redactQuery(url)),
		zap.Int("status", httpStatus),
		zap.String("response", responseBody),
		zap.Int64("latency_ms", latency),
		zap.Error(err))
}

func redactQuery(url string) string {
	base, _, _ := strings.Cut(url, "?")
	return base
}
