package log

import (
	"bytes"
	"os"
	"testing"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{Format(99), "json"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"text", FormatText},
		{"TEXT", FormatText},
		{"unknown", FormatJSON},
		{"", FormatJSON},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewOutput(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(&buf)
	if out.Writer() != &buf {
		t.Error("NewOutput should wrap the given writer")
	}
}

func TestOutputStdout(t *testing.T) {
	if OutputStdout().Writer() != os.Stdout {
		t.Error("OutputStdout should write to stdout")
	}
}

func TestOutputStderr(t *testing.T) {
	if OutputStderr().Writer() != os.Stderr {
		t.Error("OutputStderr should write to stderr")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("DefaultConfig.Level = %v, want %v", config.Level, LevelInfo)
	}
	if config.Format != FormatJSON {
		t.Errorf("DefaultConfig.Format = %v, want %v", config.Format, FormatJSON)
	}
	if config.Output.Writer() != os.Stdout {
		t.Error("DefaultConfig.Output should be stdout")
	}
	if config.AddSource {
		t.Error("DefaultConfig.AddSource should be false")
	}
	if config.ServiceName != "vagas" {
		t.Errorf("DefaultConfig.ServiceName = %q, want %q", config.ServiceName, "vagas")
	}
}
