package repository

import (
	"context"
	"errors"
	"fmt"
	"roster/internal/db"
)

var (
	ErrUserNotFound    error = errors.New("user not found")
	ErrUserExists      error = errors.New("user already exists")
	ErrStudentNotFound error = errors.New("student not found")
)

type Repository struct {
	db Storage
}

func NewRepository(db Storage) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) MigrateTables() error {
	err := r.db.MigrateTable(&User{}, &Student{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *Repository) CreateUser(ctx context.Context, username, passwordHash string) (User, error) {
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	err := r.db.Insert(ctx, &user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return User{}, ErrUserExists
		}
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	return user, nil
}

func (r *Repository) ListStudents(ctx context.Context) ([]Student, error) {
	students := []Student{}

	err := r.db.GetAll(ctx, &students)
	if err != nil {
		return nil, fmt.Errorf("get all students: %w", err)
	}

	return students, nil
}

func (r *Repository) GetStudent(ctx context.Context, id uint) (Student, error) {
	var student Student

	err := r.db.GetOneBy(ctx, "id", id, &student)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Student{}, ErrStudentNotFound
		}
		return Student{}, fmt.Errorf("get student by id: %w", err)
	}

	return student, nil
}

func (r *Repository) CreateStudent(ctx context.Context, student Student) (Student, error) {
	student.ID = 0

	err := r.db.Insert(ctx, &student)
	if err != nil {
		return Student{}, fmt.Errorf("insert student: %w", err)
	}

	return student, nil
}

func (r *Repository) UpdateStudent(ctx context.Context, student Student) error {
	err := r.db.Update(ctx, &student)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("update student: %w", err)
	}

	return nil
}

func (r *Repository) DeleteStudent(ctx context.Context, id uint) error {
	err := r.db.Delete(ctx, &Student{ID: id})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("delete student: %w", err)
	}

	return nil
}
