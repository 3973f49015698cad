package logger

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config defines options for Init.
type Config struct {
	// Severity is the minimum severity to emit, by name ("debug") or tag ("D").
	// Default: "" (LOGGER_SEVERITY if set, otherwise info)
	Severity string `yaml:"severity"`
	// Colorize enables ANSI colouring of the severity tag on the console.
	// Default: false
	Colorize bool `yaml:"colorize"`
	// FilePath also appends every emitted line, timestamped, to this file.
	// Default: "" (file logging disabled)
	FilePath string `yaml:"file_path"`
}

// severityEnv names the environment variable consulted when Config.Severity is empty.
const severityEnv = "LOGGER_SEVERITY"

// resolveSeverity returns the configured threshold. On a parse error it
// returns Info together with the error.
func resolveSeverity(name string) (Severity, error) {
	if strings.TrimSpace(name) == "" {
		name = os.Getenv(severityEnv)
	}
	if strings.TrimSpace(name) == "" {
		return Info, nil
	}
	return ParseSeverity(name)
}

// ParseConfig decodes YAML into a Config, rejecting unknown keys.
// Empty input yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "decode logger config")
	}
	if cfg.Severity != "" {
		if _, err := ParseSeverity(cfg.Severity); err != nil {
			return Config{}, errors.Wrap(err, "logger config")
		}
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML logger config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read logger config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "load logger config %s", path)
	}
	return cfg, nil
}
