package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewFallsBackToDefault(t *testing.T) {
	l := New(logr.Logger{})
	assert.NotNil(t, l.Logr().GetSink())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("chatty"))
}

func TestDebugRespectsVerbosity(t *testing.T) {
	var lines []string
	sink := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 0})

	l := New(sink).WithName("test")
	l.Debug("hidden")
	l.Info("shown", "k", "v")

	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"shown"`)
}
