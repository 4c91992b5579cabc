package core

import (
	"context"
	"roster/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	GetUserByUsername(ctx context.Context, username string) (repository.User, error)
	CreateUser(ctx context.Context, username, passwordHash string) (repository.User, error)
	ListStudents(ctx context.Context) ([]repository.Student, error)
	GetStudent(ctx context.Context, id uint) (repository.Student, error)
	CreateStudent(ctx context.Context, student repository.Student) (repository.Student, error)
	UpdateStudent(ctx context.Context, student repository.Student) error
	DeleteStudent(ctx context.Context, id uint) error
}
