package log

import "sync/atomic"

var defaultLogger atomic.Pointer[Logger]

// SetDefaultLogger installs the process-wide logger. The CLI calls
// this once at startup after loading config.
func SetDefaultLogger(logger *Logger) {
	defaultLogger.Store(logger)
}

// DefaultLogger returns the process-wide logger, lazily creating one
// with default config if startup never installed one.
func DefaultLogger() *Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	logger := Default()
	defaultLogger.CompareAndSwap(nil, logger)
	return defaultLogger.Load()
}
