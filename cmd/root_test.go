package cmd_test

import (
	"bytes"
	"path/filepath"

	"roster/cmd"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("create-user command", func() {
	var out *bytes.Buffer

	run := func(args ...string) error {
		app := cmd.App()
		app.Writer = out
		app.ErrWriter = out
		return app.Run(append([]string{"roster"}, args...))
	}

	BeforeEach(func() {
		out = new(bytes.Buffer)
		GinkgoT().Setenv("SESSION_SECRET", "0123456789abcdef0123")
		GinkgoT().Setenv("DB_DRIVER", "sqlite")
		GinkgoT().Setenv("DB_CONNECTION_URL", filepath.Join(GinkgoT().TempDir(), "students.db"))
		GinkgoT().Setenv("BCRYPT_COST", "4")
		GinkgoT().Setenv("LOG_LEVEL", "error")
		GinkgoT().Setenv("APP_ENV", "prod")
	})

	It("should create a user once", func() {
		Expect(run("create-user", "--username", "dave", "--password", "pw")).To(Succeed())
		Expect(out.String()).To(ContainSubstring(`user "dave" created`))

		err := run("create-user", "--username", "dave", "--password", "pw")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("already exists"))
	})

	It("should require a username", func() {
		Expect(run("create-user", "--password", "pw")).NotTo(Succeed())
	})
})
