package log_test

import (
	"roster/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("zap helpers", func() {
	DescribeTable("ParseLevel",
		func(in string, expected zapcore.Level) {
			Expect(log.ParseLevel(in)).To(Equal(expected))
		},
		Entry("debug", "debug", zapcore.DebugLevel),
		Entry("warn", "warn", zapcore.WarnLevel),
		Entry("error", "error", zapcore.ErrorLevel),
		Entry("unknown falls back to info", "loud", zapcore.InfoLevel),
	)

	It("should honour the configured level", func() {
		logger := log.NewZapLogger("roster", zapcore.WarnLevel)
		Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
		Expect(logger.Desugar().Core().Enabled(zapcore.WarnLevel)).To(BeTrue())

		dev := log.NewZapDevLogger("roster", zapcore.DebugLevel)
		Expect(dev.Desugar().Core().Enabled(zapcore.DebugLevel)).To(BeTrue())
	})

	It("should build a gorm logger", func() {
		Expect(log.NewGormLogger(log.NewZapLogger("roster", zapcore.InfoLevel), zapcore.InfoLevel)).NotTo(BeNil())
	})
})
