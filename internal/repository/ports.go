package repository

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Storage . Storage
type Storage interface {
	MigrateTable(tbl ...any) error
	GetOneBy(ctx context.Context, column string, value any, entity any) error
	GetAll(ctx context.Context, entities any) error
	Insert(ctx context.Context, record any) error
	Update(ctx context.Context, record any) error
	Delete(ctx context.Context, record any) error
}
