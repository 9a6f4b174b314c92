// Package config loads the client configuration.
//
// Precedence, lowest to highest: built-in defaults, the optional config
// file at ~/.vagas/config.yaml, a .env file in the working directory, and
// finally VAGAS_* environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/portaldevagas/vagas-cli/internal/errors"
)

// Config is the resolved client configuration.
type Config struct {
	// APIURL is the base URL of the Portal de Vagas backend.
	APIURL string `yaml:"api_url"`
	// CredentialDir is where persisted credentials live.
	CredentialDir string `yaml:"credential_dir"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is one of text, json.
	LogFormat string `yaml:"log_format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		APIURL:        "https://api.portaldevagas.gov.br",
		CredentialDir: defaultCredentialDir(),
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

func defaultCredentialDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".vagas"
	}
	return filepath.Join(home, ".vagas")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".vagas", "config.yaml")
	}
	return filepath.Join(home, ".vagas", "config.yaml")
}

// Load resolves the configuration from all layers. A missing config file
// or .env file is not an error; a malformed config file is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		path = DefaultPath()
	}
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	// .env is a developer convenience; ignore it when absent.
	_ = godotenv.Load()

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeFileReadFailed, fmt.Sprintf("failed to read config file: %s", path), err)
	}

	// Allow ${VAR} references inside the file
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), c); err != nil {
		return errors.NewConfigUnmarshalError(path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("VAGAS_API_URL")); v != "" {
		c.APIURL = v
	}
	if v := strings.TrimSpace(os.Getenv("VAGAS_CREDENTIAL_DIR")); v != "" {
		c.CredentialDir = v
	}
	if v := strings.TrimSpace(os.Getenv("VAGAS_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("VAGAS_LOG_FORMAT")); v != "" {
		c.LogFormat = v
	}
}

// Validate checks the resolved configuration.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "api_url must not be empty").
			WithSuggestion("Set api_url in the config file or VAGAS_API_URL in the environment")
	}
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("api_url must be an http(s) URL, got %q", c.APIURL))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("log_level must be debug, info, warn, or error, got %q", c.LogLevel))
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return errors.New(errors.ErrCodeConfigInvalid, fmt.Sprintf("log_format must be text or json, got %q", c.LogFormat))
	}
	return nil
}

// Save writes the configuration to path, creating the directory if needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "failed to marshal config", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return errors.Wrap(errors.ErrCodeDirectoryFailed, fmt.Sprintf("failed to create config directory: %s", filepath.Dir(path)), err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, fmt.Sprintf("failed to write config file: %s", path), err)
	}
	return nil
}
