package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	deliverycontext "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// HTTPObserver records served requests, keyed by route template.
type HTTPObserver interface {
	ObserveHTTPRequest(method, path string, status int, elapsed time.Duration)
}

// LoggerMiddleware observes every request and, in debug mode, logs it
type LoggerMiddleware struct {
	logger   *slog.Logger
	observer HTTPObserver
	debug    bool
}

// NewLoggerMiddleware creates a new logger middleware. observer may be nil.
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config, observer HTTPObserver) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:   logger,
		observer: observer,
		debug:    config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// let the error handler write the status before it is observed
			c.Error(err)
		}

		status := c.Response().Status
		if m.observer != nil {
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			m.observer.ObserveHTTPRequest(c.Request().Method, path, status, time.Since(start))
		}
		if m.debug {
			m.logRequest(c, start, status, err)
		}

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if sessionID, ok := deliverycontext.GetSessionID(c); ok {
		fields = append(fields, slog.String("session_id", sessionID))
	}
	if len(req.URL.RawQuery) > 0 {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	m.logger.LogAttrs(context.Background(), logLevel, "HTTP Request", fields...)
}
