package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

var _ Logger = (*stdLogger)(nil)

var defaultLogger Logger = NewStdLogger(os.Stderr)

// SetDefaultLogger sets the default logger.
// This is not concurrency safe, which means it should only be called during init.
func SetDefaultLogger(l Logger) {
	if l == nil {
		panic("logger must not be nil")
	}
	defaultLogger = l
}

// NewStdLogger returns a Logger writing level-prefixed lines to w through
// the standard log package.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{
		logger: log.New(w, "", log.LstdFlags|log.Lshortfile|log.Lmicroseconds),
	}
}

type stdLogger struct {
	logger *log.Logger
}

func (sl *stdLogger) logf(lv Level, format string, v ...any) {
	if level > lv {
		return
	}
	// skip logf, the level method and the package function
	_ = sl.logger.Output(4, lv.String()+fmt.Sprintf(format, v...))
}

func (sl *stdLogger) Debug(format string, v ...any) {
	sl.logf(LevelDebug, format, v...)
}

func (sl *stdLogger) Info(format string, v ...any) {
	sl.logf(LevelInfo, format, v...)
}

func (sl *stdLogger) Warn(format string, v ...any) {
	sl.logf(LevelWarn, format, v...)
}

func (sl *stdLogger) Error(format string, v ...any) {
	sl.logf(LevelError, format, v...)
}
