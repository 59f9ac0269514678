package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdLogger(t *testing.T) {
	defer SetLevel(LevelDebug)

	buffer := &bytes.Buffer{}
	l := NewStdLogger(buffer)

	SetLevel(LevelDebug)
	l.Debug("chained %d sources", 3)
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error %s", "message")

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if assert.Len(t, lines, 4) {
		assert.Contains(t, lines[0], "[DEBUG] chained 3 sources")
		assert.Contains(t, lines[1], "[INFO] info message")
		assert.Contains(t, lines[2], "[WARN] warn message")
		assert.Contains(t, lines[3], "[ERROR] error message")
	}
}

func TestStdLoggerLevel(t *testing.T) {
	defer SetLevel(LevelDebug)

	buffer := &bytes.Buffer{}
	l := NewStdLogger(buffer)

	SetLevel(LevelWarn)
	l.Debug("debug message")
	l.Info("info message")
	assert.Empty(t, buffer.String())

	l.Warn("warn message")
	assert.Contains(t, buffer.String(), "[WARN] warn message")
}
