package core

import (
	"context"
	"errors"
	"fmt"
	"roster/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials error = errors.New("invalid username or password")
	ErrMissingCredentials error = errors.New("username and password are required")
	ErrUserExists         error = errors.New("user already exists")
	ErrStudentNotFound    error = errors.New("student not found")
	ErrPasswordTooLong    error = errors.New("password exceeds 72 bytes")
)

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// Roster holds the application logic: staff authentication, user provisioning and the student list.
type Roster struct {
	logs       *zap.SugaredLogger
	repo       Repository
	bcryptCost int
	dummyHash  []byte
}

// NewRoster is a constructor function for the Roster type.
func NewRoster(logger *zap.SugaredLogger, repo Repository, bcryptCost int) (*Roster, error) {
	// compared against when the username is unknown so both failure paths cost one bcrypt run
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("roster-dummy-password"), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}

	return &Roster{
		logs:       logger,
		repo:       repo,
		bcryptCost: bcryptCost,
		dummyHash:  dummyHash,
	}, nil
}

// Authenticate checks the provided username and password against the stored bcrypt hash.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (r *Roster) Authenticate(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	user, err := r.repo.GetUserByUsername(ctx, msg.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(r.dummyHash, []byte(msg.Password))
			return UserRecord{}, ErrInvalidCredentials
		}
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(msg.Password)); err != nil {
		return UserRecord{}, ErrInvalidCredentials
	}

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// CreateUser hashes the password and stores a new user. Empty fields and taken usernames are rejected.
func (r *Roster) CreateUser(ctx context.Context, msg AuthMessage) (UserRecord, error) {
	if msg.Username == "" || msg.Password == "" {
		return UserRecord{}, ErrMissingCredentials
	}
	if len(msg.Password) > MaxPasswordBytes {
		return UserRecord{}, ErrPasswordTooLong
	}

	_, err := r.repo.GetUserByUsername(ctx, msg.Username)
	if err == nil {
		return UserRecord{}, ErrUserExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return UserRecord{}, fmt.Errorf("get user from db: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(msg.Password), r.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return UserRecord{}, ErrPasswordTooLong
		}
		return UserRecord{}, fmt.Errorf("hash password: %w", err)
	}

	user, err := r.repo.CreateUser(ctx, msg.Username, string(hash))
	if err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			return UserRecord{}, ErrUserExists
		}
		return UserRecord{}, fmt.Errorf("create user: %w", err)
	}

	r.logs.Infow("user created", "userId", user.ID, "username", user.Username)

	return UserRecord{
		ID:       user.ID,
		Username: user.Username,
	}, nil
}

// EnsureUser creates the user unless one with the same username already exists.
// It reports whether a user was created.
func (r *Roster) EnsureUser(ctx context.Context, msg AuthMessage) (bool, error) {
	_, err := r.CreateUser(ctx, msg)
	if err != nil {
		if errors.Is(err, ErrUserExists) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ListStudents returns every student in storage order.
func (r *Roster) ListStudents(ctx context.Context) ([]StudentRecord, error) {
	students, err := r.repo.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}

	records := make([]StudentRecord, len(students))
	for i, s := range students {
		records[i] = studentToRecord(s)
	}

	return records, nil
}

func (r *Roster) GetStudent(ctx context.Context, id uint) (StudentRecord, error) {
	student, err := r.repo.GetStudent(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return StudentRecord{}, ErrStudentNotFound
		}
		return StudentRecord{}, fmt.Errorf("get student: %w", err)
	}

	return studentToRecord(student), nil
}

func (r *Roster) AddStudent(ctx context.Context, msg StudentMessage) (StudentRecord, error) {
	student, err := r.repo.CreateStudent(ctx, repository.Student{
		Name:  msg.Name,
		Age:   msg.Age,
		Grade: msg.Grade,
	})
	if err != nil {
		return StudentRecord{}, fmt.Errorf("add student: %w", err)
	}

	r.logs.Infow("student added", "studentId", student.ID)

	return studentToRecord(student), nil
}

// UpdateStudent overwrites name, age and grade of an existing student.
func (r *Roster) UpdateStudent(ctx context.Context, id uint, msg StudentMessage) (StudentRecord, error) {
	if _, err := r.GetStudent(ctx, id); err != nil {
		return StudentRecord{}, err
	}

	student := repository.Student{
		ID:    id,
		Name:  msg.Name,
		Age:   msg.Age,
		Grade: msg.Grade,
	}
	if err := r.repo.UpdateStudent(ctx, student); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return StudentRecord{}, ErrStudentNotFound
		}
		return StudentRecord{}, fmt.Errorf("update student: %w", err)
	}

	r.logs.Infow("student updated", "studentId", id)

	return studentToRecord(student), nil
}

func (r *Roster) DeleteStudent(ctx context.Context, id uint) error {
	if _, err := r.GetStudent(ctx, id); err != nil {
		return err
	}

	if err := r.repo.DeleteStudent(ctx, id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return ErrStudentNotFound
		}
		return fmt.Errorf("delete student: %w", err)
	}

	r.logs.Infow("student deleted", "studentId", id)

	return nil
}

func studentToRecord(s repository.Student) StudentRecord {
	return StudentRecord{
		ID:    s.ID,
		Name:  s.Name,
		Age:   s.Age,
		Grade: s.Grade,
	}
}
