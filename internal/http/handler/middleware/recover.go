package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

const internalErrorText = "Oops! Something went wrong. Please try again later."

type RecoverMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoverMiddleware(logger *zap.SugaredLogger) *RecoverMiddleware {
	return &RecoverMiddleware{
		logs: logger,
	}
}

func (m *RecoverMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				m.logs.Errorw("panic recovered",
					"error", rec,
					"path", r.URL.Path,
					"request_id", RequestIDFromContext(r.Context()))
				http.Error(w, internalErrorText, http.StatusInternalServerError)
			}
		}()

		next.ServeHTTP(w, r)
	})
}
