package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (FRAMECACHE_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("FRAMECACHE_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("image-ext", os.Getenv("FRAMECACHE_IMAGE_EXTENSION"), &cfg.ImageExtension)
	s.setString("texture", os.Getenv("FRAMECACHE_TEXTURE"), &cfg.Texture)

	if err := s.setDuration("debounce", os.Getenv("FRAMECACHE_DEBOUNCE"), &cfg.Debounce); err != nil {
		return err
	}
	if err := s.setDuration("sweep-interval", os.Getenv("FRAMECACHE_SWEEP_INTERVAL"), &cfg.SweepInterval); err != nil {
		return err
	}
	if err := s.setBytes("memory-watermark", os.Getenv("FRAMECACHE_MEMORY_HIGH_WATERMARK"), &cfg.MemoryHighWatermark); err != nil {
		return err
	}

	s.setBoolFromString("purge", os.Getenv("FRAMECACHE_PURGE_ON_PRESSURE"), &cfg.PurgeOnPressure)
	return nil
}
