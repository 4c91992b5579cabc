package middleware

import (
	"net/http"
	"roster/internal/session"

	"go.uber.org/zap"
)

const (
	LoginPath        = "/login"
	loginRequiredMsg = "Please log in to access this page."
)

type SessionGuard struct {
	logs     *zap.SugaredLogger
	sessions SessionChecker
}

func NewSessionGuard(logger *zap.SugaredLogger, sessions SessionChecker) *SessionGuard {
	return &SessionGuard{
		logs:     logger,
		sessions: sessions,
	}
}

// Require lets authenticated requests through and sends everyone else to the login page.
func (g *SessionGuard) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.sessions.IsAuthenticated(r) {
			next.ServeHTTP(w, r)
			return
		}

		if err := g.sessions.Flash(w, r, session.FlashWarning, loginRequiredMsg); err != nil {
			g.logs.Errorw("failed to flash login notice",
				"error", err,
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()))
		}

		http.Redirect(w, r, LoginPath, http.StatusFound)
	})
}
