package handler

import (
	"context"
	"io"
	"net/http"
	"roster/internal/core"
	"roster/internal/http/payload"
	"roster/internal/http/view"
	"roster/internal/session"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name RosterService . RosterService
type RosterService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	CreateUser(ctx context.Context, msg core.AuthMessage) (core.UserRecord, error)
	ListStudents(ctx context.Context) ([]core.StudentRecord, error)
	GetStudent(ctx context.Context, id uint) (core.StudentRecord, error)
	AddStudent(ctx context.Context, msg core.StudentMessage) (core.StudentRecord, error)
	UpdateStudent(ctx context.Context, id uint, msg core.StudentMessage) (core.StudentRecord, error)
	DeleteStudent(ctx context.Context, id uint) error
}

type SessionManager interface {
	Current(r *http.Request) session.Session
	Login(w http.ResponseWriter, r *http.Request, userID uint, username string) error
	Clear(w http.ResponseWriter, r *http.Request) error
	Flash(w http.ResponseWriter, r *http.Request, category, message string) error
	PopFlashes(r *http.Request) []session.Flash
}

type RequestValidator interface {
	DecodeAndValidateForm(r *http.Request, object payload.FormBinder) error
}

type Renderer interface {
	Render(w io.Writer, name string, page view.Page) error
}

type Guard interface {
	Require(next http.Handler) http.Handler
}
