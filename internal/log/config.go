package log

import (
	"io"
	"os"
	"strings"
)

// Format selects the handler wiring: JSON for machine consumption,
// text for a human watching the terminal.
type Format int

const (
	FormatJSON Format = iota
	FormatText
)

func (f Format) String() string {
	if f == FormatText {
		return "text"
	}
	return "json"
}

// ParseFormat reads a format name case-insensitively. "console" is
// accepted as an alias for text; anything else means JSON.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "text", "console":
		return FormatText
	default:
		return FormatJSON
	}
}

// Output wraps the destination writer so config files and env vars
// can name a sink without holding a raw io.Writer.
type Output struct {
	writer io.Writer
}

func (o Output) Writer() io.Writer {
	return o.writer
}

func NewOutput(w io.Writer) Output {
	return Output{writer: w}
}

func OutputStdout() Output {
	return Output{writer: os.Stdout}
}

func OutputStderr() Output {
	return Output{writer: os.Stderr}
}

// Config holds logger settings resolved from the CLI config layer.
type Config struct {
	Level  Level
	Format Format
	Output Output

	// AddSource includes file and line in every record.
	AddSource bool

	ServiceName    string
	ServiceVersion string
}

// DefaultConfig logs at INFO in JSON to stdout.
func DefaultConfig() Config {
	return Config{
		Level:          LevelInfo,
		Format:         FormatJSON,
		Output:         OutputStdout(),
		ServiceName:    "vagas",
		ServiceVersion: "dev",
	}
}
