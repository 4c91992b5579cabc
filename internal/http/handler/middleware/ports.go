package middleware

import "net/http"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SessionChecker . SessionChecker
type SessionChecker interface {
	IsAuthenticated(r *http.Request) bool
	Flash(w http.ResponseWriter, r *http.Request, category, message string) error
}
