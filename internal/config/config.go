// Package config loads floatdump settings from an optional YAML file and the
// environment. The command line itself only carries the input path.
package config

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/born-ml/floatdump/internal/dump"
	"github.com/born-ml/floatdump/internal/format"
	"github.com/born-ml/floatdump/internal/record"
)

// Environment variables.
const (
	EnvConfig    = "FLOATDUMP_CONFIG"
	EnvByteOrder = "FLOATDUMP_BYTE_ORDER"
	EnvNotation  = "FLOATDUMP_NOTATION"
	EnvPartial   = "FLOATDUMP_PARTIAL"
	EnvLogLevel  = "FLOATDUMP_LOG_LEVEL"
	EnvLogFormat = "FLOATDUMP_LOG_FORMAT"
)

// Log formats.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config is the top-level structure of the YAML file.
type Config struct {
	ByteOrder string `yaml:"byte_order"` // native, little or big
	Notation  string `yaml:"notation"`   // plain, scientific or fixed
	Partial   string `yaml:"partial"`    // ignore or fail
	Log       Log    `yaml:"log"`
}

// Log configures diagnostics on stderr.
type Log struct {
	Level  string `yaml:"level"`  // zerolog level name
	Format string `yaml:"format"` // console or json
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		ByteOrder: "native",
		Notation:  format.Plain.String(),
		Partial:   dump.PartialIgnore.String(),
		Log: Log{
			Level:  zerolog.WarnLevel.String(),
			Format: LogFormatConsole,
		},
	}
}

// Load builds the configuration from the environment: defaults, then the
// file named by FLOATDUMP_CONFIG if set, then individual FLOATDUMP_*
// overrides. The result is validated.
func Load(getenv func(string) string) (*Config, error) {
	cfg := Default()
	if path := getenv(EnvConfig); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv(getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML file on top of the defaults and validates it.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.mergeFile(path); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	//nolint:gosec // G304: the config path is operator supplied.
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := c.decode(data); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.ByteOrder, EnvByteOrder)
	set(&c.Notation, EnvNotation)
	set(&c.Partial, EnvPartial)
	set(&c.Log.Level, EnvLogLevel)
	set(&c.Log.Format, EnvLogFormat)
}

// Validate checks that every field resolves.
func (c *Config) Validate() error {
	if _, err := c.ByteOrderValue(); err != nil {
		return fmt.Errorf("%w: byte_order: %w", ErrInvalid, err)
	}
	if _, err := c.NotationValue(); err != nil {
		return fmt.Errorf("%w: notation: %w", ErrInvalid, err)
	}
	if _, err := c.PartialValue(); err != nil {
		return fmt.Errorf("%w: partial: %w", ErrInvalid, err)
	}
	if _, err := c.Log.LevelValue(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("%w: log.format: unknown format %q", ErrInvalid, c.Log.Format)
	}
	return nil
}

// ByteOrderValue resolves ByteOrder.
func (c *Config) ByteOrderValue() (binary.ByteOrder, error) {
	return record.ParseByteOrder(c.ByteOrder)
}

// NotationValue resolves Notation.
func (c *Config) NotationValue() (format.Notation, error) {
	return format.ParseNotation(c.Notation)
}

// PartialValue resolves Partial.
func (c *Config) PartialValue() (dump.PartialPolicy, error) {
	return dump.ParsePartialPolicy(c.Partial)
}

// LevelValue resolves Level. The empty string means warn.
func (l Log) LevelValue() (zerolog.Level, error) {
	if strings.TrimSpace(l.Level) == "" {
		return zerolog.WarnLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(l.Level)))
}

// JSON reports whether JSON log output is selected.
func (l Log) JSON() bool {
	return strings.EqualFold(l.Format, LogFormatJSON)
}
