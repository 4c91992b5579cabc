package cmd_test

import (
	"errors"

	"roster/cmd"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

var _ = Describe("closeAndLog", func() {
	var (
		logs   *observer.ObservedLogs
		logger *zap.SugaredLogger
	)

	BeforeEach(func() {
		var core zapcore.Core
		core, logs = observer.New(zapcore.InfoLevel)
		logger = zap.New(core).Sugar()
	})

	When("closing fails", func() {
		It("should log and return the error", func() {
			fakeErr := errors.New("fake error")
			err := cmd.CloseAndLog(logger, closerFunc(func() error { return fakeErr }))
			Expect(err).To(MatchError(fakeErr))

			entries := logs.FilterMessage("failed to close database").All()
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].Level).To(Equal(zapcore.ErrorLevel))
			Expect(entries[0].ContextMap()).To(HaveKeyWithValue("error", "fake error"))
		})
	})

	When("closing succeeds", func() {
		It("should stay quiet", func() {
			Expect(cmd.CloseAndLog(logger, closerFunc(func() error { return nil }))).To(Succeed())
			Expect(logs.Len()).To(Equal(0))
		})
	})
})
