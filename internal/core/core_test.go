package core_test

import (
	"context"
	"errors"
	"roster/internal/core"
	"roster/internal/core/fake"
	"roster/internal/repository"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Roster", func() {
	var (
		fakeRepo   *fake.Repository
		fakeLogger *zap.SugaredLogger
		ctx        context.Context

		roster *core.Roster

		fakeErr error
	)

	BeforeEach(func() {
		var err error
		fakeRepo = new(fake.Repository)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		roster, err = core.NewRoster(fakeLogger, fakeRepo, bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			user           core.UserRecord
			err            error
			hashedPassword string
		)

		BeforeEach(func() {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte("testpass"), bcrypt.MinCost)
			Expect(hashErr).NotTo(HaveOccurred())
			hashedPassword = string(hash)

			authMsg = core.AuthMessage{
				Username: "testuser",
				Password: "testpass",
			}
		})

		JustBeforeEach(func() {
			user, err = roster.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           12,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.UserRecord{ID: 12, Username: "testuser"}))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return the generic credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
				Expect(user).To(BeZero())
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					ID:           12,
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return the same generic credentials error", func() {
				Expect(err).To(MatchError(core.ErrInvalidCredentials))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the wrapped error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(core.ErrInvalidCredentials))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			msg  core.AuthMessage
			user core.UserRecord
			err  error
		)

		BeforeEach(func() {
			msg = core.AuthMessage{Username: "carol", Password: "s3cret"}
			fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			fakeRepo.CreateUserStub = func(ctx context.Context, username, hash string) (repository.User, error) {
				return repository.User{ID: 5, Username: username, PasswordHash: hash}, nil
			}
		})

		JustBeforeEach(func() {
			user, err = roster.CreateUser(ctx, msg)
		})

		When("the username is free", func() {
			It("should store a bcrypt hash of the password", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(core.UserRecord{ID: 5, Username: "carol"}))

				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
				_, username, hash := fakeRepo.CreateUserArgsForCall(0)
				Expect(username).To(Equal("carol"))
				Expect(hash).NotTo(Equal("s3cret"))
				Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret"))).To(Succeed())
			})
		})

		When("a field is empty", func() {
			BeforeEach(func() {
				msg.Password = ""
			})

			It("should reject the request without touching storage", func() {
				Expect(err).To(MatchError(core.ErrMissingCredentials))
				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(0))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the password is longer than bcrypt accepts", func() {
			BeforeEach(func() {
				msg.Password = strings.Repeat("p", core.MaxPasswordBytes+1)
			})

			It("should reject it with a dedicated error", func() {
				Expect(err).To(MatchError(core.ErrPasswordTooLong))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the password is exactly 72 bytes", func() {
			BeforeEach(func() {
				msg.Password = strings.Repeat("p", core.MaxPasswordBytes)
			})

			It("should create the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
			})
		})

		When("the username already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{ID: 1, Username: "carol"}, nil)
			})

			It("should never insert a second row", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("the insert hits the unique index", func() {
			BeforeEach(func() {
				fakeRepo.CreateUserStub = nil
				fakeRepo.CreateUserReturns(repository.User{}, repository.ErrUserExists)
			})

			It("should report the duplicate", func() {
				Expect(err).To(MatchError(core.ErrUserExists))
			})
		})

		When("the lookup fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})
	})

	Describe("EnsureUser", func() {
		var (
			created bool
			err     error
		)

		JustBeforeEach(func() {
			created, err = roster.EnsureUser(ctx, core.AuthMessage{Username: "admin", Password: "admin123"})
		})

		When("the user is missing", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				fakeRepo.CreateUserReturns(repository.User{ID: 1, Username: "admin"}, nil)
			})

			It("should create it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeTrue())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(1))
			})
		})

		When("the user already exists", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{ID: 1, Username: "admin"}, nil)
			})

			It("should leave it alone", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(created).To(BeFalse())
				Expect(fakeRepo.CreateUserCallCount()).To(Equal(0))
			})
		})

		When("storage fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(created).To(BeFalse())
			})
		})

		When("the configured password is too long", func() {
			It("should fail with the dedicated error", func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
				created, err := roster.EnsureUser(ctx, core.AuthMessage{
					Username: "admin",
					Password: strings.Repeat("a", 80),
				})
				Expect(err).To(MatchError(core.ErrPasswordTooLong))
				Expect(created).To(BeFalse())
			})
		})
	})

	Describe("ListStudents", func() {
		var (
			records []core.StudentRecord
			err     error
		)

		JustBeforeEach(func() {
			records, err = roster.ListStudents(ctx)
		})

		When("students exist", func() {
			BeforeEach(func() {
				fakeRepo.ListStudentsReturns([]repository.Student{
					{ID: 1, Name: "Ann", Age: 14, Grade: "9"},
					{ID: 2, Name: "Ben", Age: 15, Grade: "10"},
				}, nil)
			})

			It("should map every row", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(records).To(Equal([]core.StudentRecord{
					{ID: 1, Name: "Ann", Age: 14, Grade: "9"},
					{ID: 2, Name: "Ben", Age: 15, Grade: "10"},
				}))
			})
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.ListStudentsReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("AddStudent", func() {
		var (
			record core.StudentRecord
			err    error
		)

		BeforeEach(func() {
			fakeRepo.CreateStudentStub = func(ctx context.Context, s repository.Student) (repository.Student, error) {
				s.ID = 3
				return s, nil
			}
		})

		JustBeforeEach(func() {
			record, err = roster.AddStudent(ctx, core.StudentMessage{Name: "Ann", Age: 14, Grade: "9"})
		})

		It("should insert the student unconditionally", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(record).To(Equal(core.StudentRecord{ID: 3, Name: "Ann", Age: 14, Grade: "9"}))

			_, arg := fakeRepo.CreateStudentArgsForCall(0)
			Expect(arg).To(Equal(repository.Student{Name: "Ann", Age: 14, Grade: "9"}))
		})

		When("the repository fails", func() {
			BeforeEach(func() {
				fakeRepo.CreateStudentStub = nil
				fakeRepo.CreateStudentReturns(repository.Student{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetStudent", func() {
		var err error

		JustBeforeEach(func() {
			_, err = roster.GetStudent(ctx, 42)
		})

		When("the student is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetStudentReturns(repository.Student{}, repository.ErrStudentNotFound)
			})

			It("should return not found", func() {
				Expect(err).To(MatchError(core.ErrStudentNotFound))
			})
		})
	})

	Describe("UpdateStudent", func() {
		var (
			record core.StudentRecord
			err    error
		)

		BeforeEach(func() {
			fakeRepo.GetStudentReturns(repository.Student{ID: 4, Name: "Old", Age: 10, Grade: "4"}, nil)
		})

		JustBeforeEach(func() {
			record, err = roster.UpdateStudent(ctx, 4, core.StudentMessage{Name: "New", Age: 11, Grade: "5"})
		})

		When("the student exists", func() {
			It("should replace all three fields", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(Equal(core.StudentRecord{ID: 4, Name: "New", Age: 11, Grade: "5"}))

				Expect(fakeRepo.UpdateStudentCallCount()).To(Equal(1))
				_, arg := fakeRepo.UpdateStudentArgsForCall(0)
				Expect(arg).To(Equal(repository.Student{ID: 4, Name: "New", Age: 11, Grade: "5"}))
			})
		})

		When("the student is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetStudentReturns(repository.Student{}, repository.ErrStudentNotFound)
			})

			It("should return not found without writing", func() {
				Expect(err).To(MatchError(core.ErrStudentNotFound))
				Expect(fakeRepo.UpdateStudentCallCount()).To(Equal(0))
			})
		})

		When("the row disappears before the update", func() {
			BeforeEach(func() {
				fakeRepo.UpdateStudentReturns(repository.ErrStudentNotFound)
			})

			It("should return not found", func() {
				Expect(err).To(MatchError(core.ErrStudentNotFound))
			})
		})
	})

	Describe("DeleteStudent", func() {
		var err error

		BeforeEach(func() {
			fakeRepo.GetStudentReturns(repository.Student{ID: 4, Name: "Ann"}, nil)
		})

		JustBeforeEach(func() {
			err = roster.DeleteStudent(ctx, 4)
		})

		When("the student exists", func() {
			It("should delete it", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeRepo.DeleteStudentCallCount()).To(Equal(1))
				_, id := fakeRepo.DeleteStudentArgsForCall(0)
				Expect(id).To(Equal(uint(4)))
			})
		})

		When("the student is unknown", func() {
			BeforeEach(func() {
				fakeRepo.GetStudentReturns(repository.Student{}, repository.ErrStudentNotFound)
			})

			It("should return not found without deleting", func() {
				Expect(err).To(MatchError(core.ErrStudentNotFound))
				Expect(fakeRepo.DeleteStudentCallCount()).To(Equal(0))
			})
		})

		When("the delete fails", func() {
			BeforeEach(func() {
				fakeRepo.DeleteStudentReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
