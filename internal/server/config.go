// Package server exposes repayment schedules over HTTP.
package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/iwvelando/mortgage-schedule/internal/config"
	"github.com/iwvelando/mortgage-schedule/pkg/constants"
	"github.com/iwvelando/mortgage-schedule/pkg/schedule"
	"github.com/iwvelando/mortgage-schedule/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address     string `yaml:"address"`
	MaxBodySize string `yaml:"maxBodySize"`
	// MaxLoanTerm caps the months a single request may schedule.
	MaxLoanTerm int `yaml:"maxLoanTerm"`
	// DefaultSchedule applies to requests that name no schedule kind.
	DefaultSchedule string               `yaml:"defaultSchedule"`
	Logging         config.LoggingConfig `yaml:"logging"`

	bodySize int64
	kind     schedule.Kind
}

func defaultConfig() *Config {
	return &Config{
		Address:         constants.DefaultServerAddress,
		MaxBodySize:     strconv.FormatInt(constants.DefaultMaxBodySizeBytes, 10),
		MaxLoanTerm:     constants.MaxRequestLoanTermMonths,
		DefaultSchedule: constants.DefaultSchedule,
		bodySize:        constants.DefaultMaxBodySizeBytes,
		kind:            schedule.Kind(constants.DefaultSchedule),
	}
}

// LoadConfig loads the server configuration from YAML. A missing file or an
// empty path yields the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// BodySizeBytes returns the largest accepted request body in bytes.
func (c *Config) BodySizeBytes() int64 {
	return c.bodySize
}

// SetBodySizeBytes overrides the configured request body limit.
func (c *Config) SetBodySizeBytes(size int64) {
	if size > 0 {
		c.bodySize = size
		c.MaxBodySize = strconv.FormatInt(size, 10)
	}
}

// Kind returns the parsed default schedule kind.
func (c *Config) Kind() schedule.Kind {
	return c.kind
}

// Options returns the handler settings described by the configuration.
func (c *Config) Options(version string) Options {
	return Options{
		MaxBodySize:     c.bodySize,
		MaxLoanTerm:     c.MaxLoanTerm,
		DefaultSchedule: c.kind,
		Version:         version,
	}
}

func (c *Config) normalize() error {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}

	if c.Logging.Format != "" {
		if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
			return err
		}
	}

	switch {
	case c.MaxLoanTerm == 0:
		c.MaxLoanTerm = constants.MaxRequestLoanTermMonths
	case c.MaxLoanTerm < 0 || c.MaxLoanTerm > constants.MaxRequestLoanTermMonths:
		return fmt.Errorf("maxLoanTerm must be between 1 and %d months, got %d",
			constants.MaxRequestLoanTermMonths, c.MaxLoanTerm)
	}

	kind, err := schedule.ParseKind(c.DefaultSchedule)
	if err != nil {
		return fmt.Errorf("invalid defaultSchedule: %w", err)
	}
	c.kind = kind
	c.DefaultSchedule = string(kind)

	size, err := ParseSize(c.MaxBodySize)
	if err != nil {
		return err
	}
	if size <= 0 {
		size = constants.DefaultMaxBodySizeBytes
	}
	c.bodySize = size
	return nil
}

var sizeUnits = map[string]int64{
	"":   1,
	"B":  1,
	"K":  1 << 10,
	"KB": 1 << 10,
	"M":  1 << 20,
	"MB": 1 << 20,
	"G":  1 << 30,
	"GB": 1 << 30,
}

// ParseSize converts a human-friendly byte string (e.g., "256K", "10M") into bytes.
// An empty string yields the default request body limit.
func ParseSize(value string) (int64, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	if trimmed == "" {
		return constants.DefaultMaxBodySizeBytes, nil
	}

	number := strings.TrimRightFunc(trimmed, func(r rune) bool { return !unicode.IsDigit(r) })
	unit := strings.TrimSpace(trimmed[len(number):])
	if number == "" {
		return 0, fmt.Errorf("invalid size: %s", value)
	}

	multiplier, ok := sizeUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unsupported size unit %q", unit)
	}

	n, err := strconv.ParseInt(strings.TrimSpace(number), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size value %q: %w", value, err)
	}

	if n > (1<<63-1)/multiplier {
		return 0, fmt.Errorf("size overflow for value %s", value)
	}
	return n * multiplier, nil
}
