package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	var out, err bytes.Buffer
	log := NewLogger(&out, &err, zapcore.InfoLevel)
	log.Debug("hidden")
	log.Info("to stdout")
	log.Error("to stderr")
	assert.NoError(t, log.Sync())

	assert.Contains(t, out.String(), "INFO")
	assert.Contains(t, out.String(), "to stdout")
	assert.NotContains(t, out.String(), "hidden")
	assert.NotContains(t, out.String(), "to stderr")
	assert.Contains(t, err.String(), "ERROR")
	assert.Contains(t, err.String(), "to stderr")
}

func TestNewLogger_Debug(t *testing.T) {
	var out, err bytes.Buffer
	log := NewLogger(&out, &err, zapcore.DebugLevel)
	log.Debug("shown")
	assert.Contains(t, out.String(), "shown")
	assert.Empty(t, err.String())
}

func TestNewNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Error("nothing")
	assert.NotNil(t, log)
}
