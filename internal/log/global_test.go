package log

import (
	"bytes"
	"sync"
	"testing"
)

func TestSetDefaultLogger(t *testing.T) {
	t.Cleanup(func() { defaultLogger.Store(nil) })

	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: NewOutput(&buf)})
	SetDefaultLogger(logger)

	if got := DefaultLogger(); got != logger {
		t.Error("DefaultLogger did not return the installed logger")
	}

	DefaultLogger().Info("routed through global")
	if !bytes.Contains(buf.Bytes(), []byte("routed through global")) {
		t.Errorf("expected message in installed logger output, got %q", buf.String())
	}
}

func TestDefaultLoggerLazyInit(t *testing.T) {
	t.Cleanup(func() { defaultLogger.Store(nil) })
	defaultLogger.Store(nil)

	logger := DefaultLogger()
	if logger == nil {
		t.Fatal("DefaultLogger returned nil without an installed logger")
	}
	if again := DefaultLogger(); again != logger {
		t.Error("lazy init did not stick; repeated calls returned different loggers")
	}
}

func TestDefaultLoggerConcurrent(t *testing.T) {
	t.Cleanup(func() { defaultLogger.Store(nil) })
	defaultLogger.Store(nil)

	loggers := make([]*Logger, 16)
	var wg sync.WaitGroup
	for i := range loggers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			loggers[i] = DefaultLogger()
		}(i)
	}
	wg.Wait()

	for i, l := range loggers {
		if l == nil {
			t.Fatalf("goroutine %d saw nil logger", i)
		}
		if l != loggers[0] {
			t.Fatalf("goroutine %d saw a different logger instance", i)
		}
	}
}
