package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type LoggingMiddleware struct {
	logs *zap.SugaredLogger
}

func NewLoggingMiddleware(logger *zap.SugaredLogger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logs: logger,
	}
}

func (m *LoggingMiddleware) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := wrap(w)

		next.ServeHTTP(wrapped, r)

		keysAndValues := []any{
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", RequestIDFromContext(r.Context()),
		}

		switch {
		case wrapped.statusCode >= http.StatusInternalServerError:
			m.logs.Errorw("request completed with error", keysAndValues...)
		case wrapped.statusCode >= http.StatusBadRequest:
			m.logs.Warnw("request completed with client error", keysAndValues...)
		default:
			m.logs.Infow("request completed", keysAndValues...)
		}
	})
}
