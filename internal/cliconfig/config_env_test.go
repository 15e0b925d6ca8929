package cliconfig

import (
	"testing"
	"time"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"FRAMECACHE_LOG_LEVEL":             "debug",
				"FRAMECACHE_IMAGE_EXTENSION":       ".jpg",
				"FRAMECACHE_DEBOUNCE":              "50ms",
				"FRAMECACHE_MEMORY_HIGH_WATERMARK": "64MiB",
				"FRAMECACHE_PURGE_ON_PRESSURE":     "true",
			},
			changed: map[string]bool{},
			expected: Config{
				LogLevel:            "debug",
				ImageExtension:      ".jpg",
				Debounce:            50 * time.Millisecond,
				MemoryHighWatermark: 64 << 20,
				PurgeOnPressure:     true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"FRAMECACHE_LOG_LEVEL": "debug",
				"FRAMECACHE_TEXTURE":   "env.png",
			},
			changed:  map[string]bool{"log-level": true},
			initial:  Config{LogLevel: "warn"},
			expected: Config{LogLevel: "warn", Texture: "env.png"},
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"FRAMECACHE_SWEEP_INTERVAL": "not-a-duration"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid size",
			envVars: map[string]string{"FRAMECACHE_MEMORY_HIGH_WATERMARK": "huge"},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)
			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

// Precedence order: CLI > Env > File.
func TestConfigPrecedence(t *testing.T) {
	trueVal := true

	fileConf := FileConfig{
		LogLevel:        "error",
		Texture:         "file.png",
		SweepInterval:   "10m",
		PurgeOnPressure: &trueVal,
	}

	t.Setenv("FRAMECACHE_LOG_LEVEL", "warn")
	t.Setenv("FRAMECACHE_TEXTURE", "env.png")

	changed := map[string]bool{"log-level": true}
	cfg := Config{LogLevel: "debug"}

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug (CLI should win)", cfg.LogLevel)
	}
	if cfg.Texture != "env.png" {
		t.Errorf("Texture = %v, want env.png (env should override file)", cfg.Texture)
	}
	if cfg.SweepInterval != 10*time.Minute {
		t.Errorf("SweepInterval = %v, want 10m (file should set)", cfg.SweepInterval)
	}
	if !cfg.PurgeOnPressure {
		t.Error("PurgeOnPressure = false, want true (file should set)")
	}
}
