package util

import (
	"runtime/debug"
	"strings"

	"github.com/mgtv-tech/hashchain-go/logger"
)

// WithRecover runs fn and logs any panic with its stack instead of letting
// it crash the process. It is meant for background goroutines.
func WithRecover(fn func()) {
	defer func() {
		if err := recover(); err != nil {
			logger.Error("%+v\n\n%s", err, strings.TrimSpace(string(debug.Stack())))
		}
	}()

	fn()
}
