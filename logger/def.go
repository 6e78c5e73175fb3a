package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var log = zap.NewNop()

// InitProduction installs a JSON production logger as the process logger.
func InitProduction() error {
	return install(zap.NewProductionConfig())
}

// InitDevelopment installs a console-friendly logger for local runs.
func InitDevelopment() error {
	return install(zap.NewDevelopmentConfig())
}

func install(cfg zap.Config) error {
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, err := cfg.Build()
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	log = l
	return nil
}

// Log returns the process logger.
func Log() *zap.Logger {
	return log
}

// S returns the sugared process logger.
func S() *zap.SugaredLogger {
	return log.Sugar()
}

// Sync flushes buffered log entries.
func Sync() {
	_ = log.Sync()
}
