// Package service describes how the rotation daemon is launched and where
// it writes: name, start trigger, credentials and rotation parameters.
package service

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/mordilloSan/go-baselog/internal/rotate"
	"github.com/mordilloSan/go-baselog/logger"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid service descriptor")

// Descriptor is the YAML service definition.
type Descriptor struct {
	// Name identifies the service to the supervisor.
	Name string `yaml:"name"`
	// Trigger is a "property=value" condition that starts the service.
	// Empty means always start.
	Trigger string `yaml:"trigger,omitempty"`
	// User and Group the supervisor runs the service as.
	User  string `yaml:"user,omitempty"`
	Group string `yaml:"group,omitempty"`
	// Rotation configures the output files.
	Rotation Rotation `yaml:"rotation"`
	// Log configures the daemon's own diagnostics.
	Log logger.Config `yaml:"log,omitempty"`
}

// Rotation holds the output path and limits.
type Rotation struct {
	Path     string `yaml:"path"`
	MaxFiles int    `yaml:"max_files"`
	MaxLines int    `yaml:"max_lines"`
}

// Default returns the stock descriptor.
func Default() *Descriptor {
	return &Descriptor{
		Name:    "logrotd",
		Trigger: "logd.rotate=true",
		User:    "logd",
		Group:   "log",
		Rotation: Rotation{
			Path:     "/var/log/logrotd/log",
			MaxFiles: 256,
			MaxLines: 1024,
		},
	}
}

// Parse decodes YAML into a Descriptor, starting from Default and
// rejecting unknown keys, then validates it.
func Parse(data []byte) (*Descriptor, error) {
	d := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(d); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode service descriptor")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads and parses the descriptor at path.
func Load(path string) (*Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read service descriptor %s", path)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "load service descriptor %s", path)
	}
	return d, nil
}

// Marshal encodes the descriptor as YAML.
func (d *Descriptor) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d)
	if err != nil {
		return nil, errors.Wrap(err, "marshal service descriptor")
	}
	return data, nil
}

// Validate checks required fields and limits.
func (d *Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.Wrap(ErrInvalid, "name is required")
	}
	if strings.ContainsAny(d.Name, " \t/") {
		return errors.Wrapf(ErrInvalid, "name %q contains whitespace or '/'", d.Name)
	}
	if d.Trigger != "" {
		if _, _, err := splitTrigger(d.Trigger); err != nil {
			return err
		}
	}
	if d.Rotation.Path == "" {
		return errors.Wrap(ErrInvalid, "rotation.path is required")
	}
	if d.Rotation.MaxFiles < 1 {
		return errors.Wrapf(ErrInvalid, "rotation.max_files must be positive, got %d", d.Rotation.MaxFiles)
	}
	if d.Rotation.MaxLines < 1 {
		return errors.Wrapf(ErrInvalid, "rotation.max_lines must be positive, got %d", d.Rotation.MaxLines)
	}
	if d.Log.Severity != "" {
		if _, err := logger.ParseSeverity(d.Log.Severity); err != nil {
			return errors.Wrap(ErrInvalid, err.Error())
		}
	}
	return nil
}

func splitTrigger(trigger string) (key, value string, err error) {
	key, value, ok := strings.Cut(trigger, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return "", "", errors.Wrapf(ErrInvalid, "trigger %q is not property=value", trigger)
	}
	return key, strings.TrimSpace(value), nil
}

// Triggered reports whether props satisfy the trigger. A descriptor
// without a trigger is always triggered.
func (d *Descriptor) Triggered(props map[string]string) bool {
	if d.Trigger == "" {
		return true
	}
	key, value, err := splitTrigger(d.Trigger)
	if err != nil {
		return false
	}
	got, ok := props[key]
	return ok && got == value
}

// RotateOptions returns the rotation parameters for rotate.Open.
func (d *Descriptor) RotateOptions() rotate.Options {
	return rotate.Options{
		Path:     d.Rotation.Path,
		MaxFiles: d.Rotation.MaxFiles,
		MaxLines: d.Rotation.MaxLines,
	}
}
