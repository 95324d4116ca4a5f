package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ProgressLogger logs the main steps of the geometry resolution.
var ProgressLogger = newLogger(zapcore.InfoLevel).Named("progress").Sugar()

// WarningLogger emits a warning for each non fatal error, like unsupported
// or invalid CSS declarations.
var WarningLogger = newLogger(zapcore.InfoLevel).Named("warning").Sugar()

func newLogger(level zapcore.Level) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeCaller = nil
	ec.TimeKey = zapcore.OmitKey
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stdout), level)
	return zap.New(core).Named("boxgeom")
}

// Configure rebuilds the package loggers for the given level,
// one of "none", "normal" or "debug".
func Configure(level string) error {
	switch level {
	case "none":
		SetLogger(zap.NewNop())
	case "normal":
		SetLogger(newLogger(zapcore.InfoLevel))
	case "debug":
		SetLogger(newLogger(zapcore.DebugLevel))
	default:
		return fmt.Errorf("unknown logging level %q", level)
	}
	return nil
}

// SetLogger replaces the package loggers by children of [log].
func SetLogger(log *zap.Logger) {
	ProgressLogger = log.Named("progress").Sugar()
	WarningLogger = log.Named("warning").Sugar()
}
