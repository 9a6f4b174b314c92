package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/portaldevagas/vagas-cli/internal/errors"
)

// captureLogger returns a JSON logger writing into the buffer
func captureLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  level,
		Format: FormatJSON,
		Output: NewOutput(&buf),
	})
	return logger, &buf
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{name: "json format", config: Config{Level: LevelInfo, Format: FormatJSON, Output: OutputStdout()}},
		{name: "text format", config: Config{Level: LevelDebug, Format: FormatText, Output: OutputStderr()}},
		{name: "default config", config: DefaultConfig()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.config)
			if logger == nil {
				t.Fatal("New() returned nil")
			}
			if logger.slog == nil {
				t.Error("New() logger has nil slog")
			}
		})
	}
}

func TestDefault(t *testing.T) {
	logger := Default()
	if logger == nil {
		t.Fatal("Default() returned nil")
	}
}

func TestLogLevelFiltering(t *testing.T) {
	logger, buf := captureLogger(LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("debug message should be filtered at WARN level")
	}
	if strings.Contains(output, "info message") {
		t.Error("info message should be filtered at WARN level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("warn message should pass at WARN level")
	}
	if !strings.Contains(output, "error message") {
		t.Error("error message should pass at WARN level")
	}
}

func TestJSONFormatOutput(t *testing.T) {
	logger, buf := captureLogger(LevelInfo)

	logger.Info("test message", "key", "value")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["msg"] != "test message" {
		t.Errorf("msg = %v, want %q", entry["msg"], "test message")
	}
	if entry["key"] != "value" {
		t.Errorf("key = %v, want %q", entry["key"], "value")
	}
}

func TestTextFormatOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatText, Output: NewOutput(&buf)})

	logger.Info("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("output missing message: %s", output)
	}
	if !strings.Contains(output, "key=value") {
		t.Errorf("output missing attribute: %s", output)
	}
}

func TestWith(t *testing.T) {
	logger, buf := captureLogger(LevelInfo)

	child := logger.With("component", "storage")
	child.Info("hello")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["component"] != "storage" {
		t.Errorf("component = %v, want %q", entry["component"], "storage")
	}
}

func TestWithErrorCodedError(t *testing.T) {
	logger, buf := captureLogger(LevelInfo)

	err := errors.New(errors.ErrCodeConfigInvalid, "bad config").
		WithSuggestion("fix the config file")
	logger.WithError(err).Warn("load failed")

	var entry map[string]interface{}
	if jsonErr := json.Unmarshal(buf.Bytes(), &entry); jsonErr != nil {
		t.Fatalf("output is not valid JSON: %v", jsonErr)
	}
	if entry["error_code"] != "CONFIG-001" {
		t.Errorf("error_code = %v, want CONFIG-001", entry["error_code"])
	}
	if entry["error"] != "bad config" {
		t.Errorf("error = %v, want %q", entry["error"], "bad config")
	}
	if _, ok := entry["suggestions"]; !ok {
		t.Error("suggestions missing from entry")
	}
}

func TestWithErrorWrappedCause(t *testing.T) {
	logger, buf := captureLogger(LevelInfo)

	err := errors.Wrap(errors.ErrCodeConfigUnmarshal, "failed to parse config",
		errors.New(errors.ErrCodeFileNotFound, "missing file"))
	logger.WithError(err).Error("boom")

	output := buf.String()
	if !strings.Contains(output, "CONFIG-002") {
		t.Errorf("output missing error code: %s", output)
	}
	if !strings.Contains(output, "cause") {
		t.Errorf("output missing cause: %s", output)
	}
}

func TestWithErrorPlainError(t *testing.T) {
	logger, buf := captureLogger(LevelInfo)

	logger.WithError(errPlain{}).Warn("something failed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if entry["error"] != "plain failure" {
		t.Errorf("error = %v, want %q", entry["error"], "plain failure")
	}
	if _, ok := entry["error_code"]; ok {
		t.Error("plain errors should not carry an error_code")
	}
}

func TestWithErrorNil(t *testing.T) {
	logger, buf := captureLogger(LevelInfo)

	logger.WithError(nil).Info("nothing wrong")

	if strings.Contains(buf.String(), "error") {
		t.Errorf("nil error should add no attributes: %s", buf.String())
	}
}

func TestNewWithInvalidFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: Format(99), Output: NewOutput(&buf)})

	logger.Info("fallback")

	// Unknown formats fall back to JSON
	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("fallback output is not JSON: %v", err)
	}
}

type errPlain struct{}

func (errPlain) Error() string { return "plain failure" }
