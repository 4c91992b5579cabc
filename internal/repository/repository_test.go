package repository_test

import (
	"context"
	"errors"
	"roster/internal/db"
	"roster/internal/repository"
	"roster/internal/repository/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Repository", func() {
	var (
		repo        *repository.Repository
		fakeStorage *fake.Storage
		ctx         context.Context
		fakeErr     error
	)

	BeforeEach(func() {
		fakeStorage = new(fake.Storage)
		repo = repository.NewRepository(fakeStorage)
		ctx = context.Background()
		fakeErr = errors.New("fake error")
	})

	Describe("MigrateTables", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.MigrateTables()
		})

		When("migration succeeds", func() {
			It("should migrate users and students", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeStorage.MigrateTableCallCount()).To(Equal(1))
				tables := fakeStorage.MigrateTableArgsForCall(0)
				Expect(tables).To(HaveLen(2))
				Expect(tables[0]).To(BeAssignableToTypeOf(&repository.User{}))
				Expect(tables[1]).To(BeAssignableToTypeOf(&repository.Student{}))
			})
		})

		When("migration fails", func() {
			BeforeEach(func() {
				fakeStorage.MigrateTableReturns(errors.New("migration error"))
			})

			It("should return an error", func() {
				Expect(err).To(MatchError("migrate table(s): migration error"))
			})
		})
	})

	Describe("GetUserByUsername", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.GetUserByUsername(ctx, "alice")
		})

		When("user exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					u := dest.(*repository.User)
					*u = repository.User{ID: 3, Username: "alice", PasswordHash: "hash"}
					return nil
				}
			})

			It("should return the user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user.ID).To(Equal(uint(3)))
				Expect(user.Username).To(Equal("alice"))

				Expect(fakeStorage.GetOneByCallCount()).To(Equal(1))
				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("username"))
				Expect(val).To(Equal("alice"))
			})
		})

		When("user doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(repository.ErrUserNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(err).NotTo(MatchError(repository.ErrUserNotFound))
			})
		})
	})

	Describe("CreateUser", func() {
		var (
			user repository.User
			err  error
		)

		JustBeforeEach(func() {
			user, err = repo.CreateUser(ctx, "bob", "hashed")
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					record.(*repository.User).ID = 9
					return nil
				}
			})

			It("should return the stored user", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(user).To(Equal(repository.User{ID: 9, Username: "bob", PasswordHash: "hashed"}))
			})
		})

		When("username is taken", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(db.ErrDuplicate)
			})

			It("should return user exists error", func() {
				Expect(err).To(MatchError(repository.ErrUserExists))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("ListStudents", func() {
		var (
			students []repository.Student
			err      error
		)

		JustBeforeEach(func() {
			students, err = repo.ListStudents(ctx)
		})

		When("students exist", func() {
			BeforeEach(func() {
				fakeStorage.GetAllStub = func(ctx context.Context, dest any) error {
					s := dest.(*[]repository.Student)
					*s = []repository.Student{
						{ID: 1, Name: "Ann", Age: 14, Grade: "9"},
						{ID: 2, Name: "Ben", Age: 15, Grade: "10"},
					}
					return nil
				}
			})

			It("should return them in storage order", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(students).To(HaveLen(2))
				Expect(students[0].Name).To(Equal("Ann"))
				Expect(students[1].Name).To(Equal("Ben"))
			})
		})

		When("there are no students", func() {
			It("should return an empty slice", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(students).NotTo(BeNil())
				Expect(students).To(BeEmpty())
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.GetAllReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("GetStudent", func() {
		var (
			student repository.Student
			err     error
		)

		JustBeforeEach(func() {
			student, err = repo.GetStudent(ctx, 7)
		})

		When("student exists", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByStub = func(ctx context.Context, column string, value any, dest any) error {
					s := dest.(*repository.Student)
					*s = repository.Student{ID: 7, Name: "Ann", Age: 14, Grade: "9"}
					return nil
				}
			})

			It("should return the student", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(student.Name).To(Equal("Ann"))

				_, col, val, _ := fakeStorage.GetOneByArgsForCall(0)
				Expect(col).To(Equal("id"))
				Expect(val).To(Equal(uint(7)))
			})
		})

		When("student doesn't exist", func() {
			BeforeEach(func() {
				fakeStorage.GetOneByReturns(db.ErrNotFound)
			})

			It("should return student not found error", func() {
				Expect(err).To(MatchError(repository.ErrStudentNotFound))
			})
		})
	})

	Describe("CreateStudent", func() {
		var (
			student repository.Student
			err     error
		)

		JustBeforeEach(func() {
			student, err = repo.CreateStudent(ctx, repository.Student{ID: 99, Name: "Ann", Age: 14, Grade: "9"})
		})

		When("insert succeeds", func() {
			BeforeEach(func() {
				fakeStorage.InsertStub = func(ctx context.Context, record any) error {
					s := record.(*repository.Student)
					Expect(s.ID).To(BeZero())
					s.ID = 1
					return nil
				}
			})

			It("should return the student with its new id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(student).To(Equal(repository.Student{ID: 1, Name: "Ann", Age: 14, Grade: "9"}))
			})
		})

		When("insert fails", func() {
			BeforeEach(func() {
				fakeStorage.InsertReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("UpdateStudent", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.UpdateStudent(ctx, repository.Student{ID: 4, Name: "Cy", Age: 16, Grade: "11"})
		})

		When("update succeeds", func() {
			It("should pass the full record", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeStorage.UpdateArgsForCall(0)
				Expect(record).To(Equal(&repository.Student{ID: 4, Name: "Cy", Age: 16, Grade: "11"}))
			})
		})

		When("no student matches", func() {
			BeforeEach(func() {
				fakeStorage.UpdateReturns(db.ErrNotFound)
			})

			It("should return student not found error", func() {
				Expect(err).To(MatchError(repository.ErrStudentNotFound))
			})
		})
	})

	Describe("DeleteStudent", func() {
		var err error

		JustBeforeEach(func() {
			err = repo.DeleteStudent(ctx, 4)
		})

		When("delete succeeds", func() {
			It("should delete by id", func() {
				Expect(err).NotTo(HaveOccurred())
				_, record := fakeStorage.DeleteArgsForCall(0)
				Expect(record).To(Equal(&repository.Student{ID: 4}))
			})
		})

		When("no student matches", func() {
			BeforeEach(func() {
				fakeStorage.DeleteReturns(db.ErrNotFound)
			})

			It("should return student not found error", func() {
				Expect(err).To(MatchError(repository.ErrStudentNotFound))
			})
		})

		When("database error occurs", func() {
			BeforeEach(func() {
				fakeStorage.DeleteReturns(fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
