package cliconfig

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jmgilman/go/errors"
)

// Config holds CLI configuration for framecache.
type Config struct {
	LogLevel string

	ImageExtension string
	Texture        string

	Debounce      time.Duration
	SweepInterval time.Duration

	MemoryHighWatermark uint64
	PurgeOnPressure     bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel:            "info",
		ImageExtension:      ".png",
		Debounce:            100 * time.Millisecond,
		SweepInterval:       5 * time.Minute,
		MemoryHighWatermark: 512 << 20, // 512 MiB
	}
}

var logLevels = map[string]bool{
	"trace": true, "debug": true, "info": true,
	"warn": true, "error": true, "fatal": true, "panic": true, "disabled": true,
}

// Validate checks the configuration for errors and normalizes values.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if !logLevels[c.LogLevel] {
		return errors.Newf(errors.CodeInvalidConfig, "unknown log level %q", c.LogLevel)
	}

	if c.ImageExtension == "" {
		c.ImageExtension = ".png"
	}
	if !strings.HasPrefix(c.ImageExtension, ".") {
		c.ImageExtension = "." + c.ImageExtension
	}

	if c.Debounce <= 0 {
		return errors.New(errors.CodeInvalidConfig, "debounce must be positive")
	}
	if c.SweepInterval <= 0 {
		return errors.New(errors.CodeInvalidConfig, "sweep interval must be positive")
	}
	if c.MemoryHighWatermark == 0 {
		return errors.New(errors.CodeInvalidConfig, "memory high watermark must be positive")
	}
	return nil
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidConfig, "parse %s", flag)
	}
	*dst = d
	return nil
}

// setBytes parses a human readable size ("256MiB", "1GB") and sets it.
func (s *configSetter) setBytes(flag, value string, dst *uint64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := humanize.ParseBytes(value)
	if err != nil {
		return errors.Wrapf(err, errors.CodeInvalidConfig, "parse %s", flag)
	}
	if n == 0 {
		return nil
	}
	*dst = n
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
