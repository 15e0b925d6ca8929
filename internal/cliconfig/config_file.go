package cliconfig

import (
	"os"
	"path/filepath"

	"github.com/jmgilman/go/errors"
	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations and sizes to
// make TOML friendly.
type FileConfig struct {
	LogLevel            string `toml:"log_level"`
	ImageExtension      string `toml:"image_extension"`
	Texture             string `toml:"texture"`
	Debounce            string `toml:"debounce"`
	SweepInterval       string `toml:"sweep_interval"`
	MemoryHighWatermark string `toml:"memory_high_watermark"`
	PurgeOnPressure     *bool  `toml:"purge_on_pressure"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, errors.WithContext(errors.Wrap(err, errors.CodeNotFound, "read config file"), "path", path)
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, errors.WithContext(errors.Wrap(err, errors.CodeInvalidConfig, "parse config file"), "path", path)
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.framecache/config.toml, or "" when the home
// directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".framecache", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("image-ext", fc.ImageExtension, &cfg.ImageExtension)
	s.setString("texture", fc.Texture, &cfg.Texture)

	if err := s.setDuration("debounce", fc.Debounce, &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setDuration("sweep-interval", fc.SweepInterval, &cfg.SweepInterval); err != nil {
		return err
	}
	if err := s.setBytes("memory-watermark", fc.MemoryHighWatermark, &cfg.MemoryHighWatermark); err != nil {
		return err
	}

	s.setBool("purge", fc.PurgeOnPressure, &cfg.PurgeOnPressure)
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
