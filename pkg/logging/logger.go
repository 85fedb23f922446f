package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func encoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// NewLogger returns a console logger that writes info and debug entries
// to out and warnings and errors to err.
func NewLogger(out, err io.Writer, level zapcore.Level) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(encoderConfig())
	lo := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l < zapcore.WarnLevel
	})
	hi := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= level && l >= zapcore.WarnLevel
	})
	core := zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.AddSync(out), lo),
		zapcore.NewCore(enc, zapcore.AddSync(err), hi),
	)
	return zap.New(core, zap.AddCaller())
}

func NewDefaultLogger(verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	return NewLogger(os.Stdout, os.Stderr, level)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *zap.Logger {
	return zap.NewNop()
}
