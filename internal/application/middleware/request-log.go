package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"go-weather/pkg/log"
	"go-weather/pkg/msg"
)

// Setup registers the request id, panic recovery and request logging middlewares.
func Setup(e *echo.Echo) {
	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomw.Recover())
	SetupRequestLogger(e)
}

// SetupRequestLogger registers the request logging middleware with custom log output.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		Skipper:      skipRequestLog,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error == nil {
				log.Info(msg.GetMessage("request.log", v.Method, v.URI, v.Status, v.Latency.String()), fields...)
			} else {
				log.Error(msg.GetMessage("request.error", v.Method, v.URI, v.Status, v.Error.Error()), append(fields, zap.Error(v.Error))...)
			}
			return nil
		},
	}))
}

// skipRequestLog keeps health probes and swagger assets out of the access log
func skipRequestLog(c echo.Context) bool {
	path := c.Request().URL.Path
	return strings.HasSuffix(path, "/health") || strings.Contains(path, "/swagger/")
}
