package log

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

// NewZapLogger returns a JSON logger writing to stdout, named after the service.
func NewZapLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	return newLogger(name, zapcore.NewJSONEncoder(encoderCfg), level)
}

// NewZapDevLogger returns a human readable console logger for local development.
func NewZapDevLogger(name string, level zapcore.Level) *zap.SugaredLogger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return newLogger(name, zapcore.NewConsoleEncoder(encoderCfg), level)
}

func newLogger(name string, encoder zapcore.Encoder, level zapcore.Level) *zap.SugaredLogger {
	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(level))
	return zap.New(core, zap.AddCaller()).Named(name).Sugar()
}

// ParseLevel maps a config level name to a zap level, falling back to info.
func ParseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// NewGormLogger routes gorm's own logging through the given zap logger.
func NewGormLogger(logger *zap.SugaredLogger, level zapcore.Level) gormlogger.Interface {
	gormLevel := gormlogger.Warn
	switch {
	case level <= zapcore.DebugLevel:
		gormLevel = gormlogger.Info
	case level >= zapcore.ErrorLevel:
		gormLevel = gormlogger.Error
	}

	return gormlogger.New(
		zap.NewStdLog(logger.Desugar().Named("gorm")),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormLevel,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
