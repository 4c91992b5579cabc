package session

import "roster/pkg/jwt"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenService . TokenService
type TokenService interface {
	Issue(data jwt.TokenInfo) (string, error)
	SessionID(token string) (string, error)
}
