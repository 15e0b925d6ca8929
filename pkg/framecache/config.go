package framecache

import (
	"fmt"
	"strings"

	"github.com/jmgilman/go/errors"
)

// DefaultImageExtension is used to derive an image path from a descriptor
// path when the descriptor does not name its texture.
const DefaultImageExtension = ".png"

// Config holds the cache settings.
type Config struct {
	// ImageExtension replaces the descriptor extension when deriving the
	// texture path, e.g. "hero.plist" becomes "hero.png".
	ImageExtension string
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills zero-valued fields.
func (c *Config) SetDefaults() {
	if c.ImageExtension == "" {
		c.ImageExtension = DefaultImageExtension
	}
	if !strings.HasPrefix(c.ImageExtension, ".") {
		c.ImageExtension = "." + c.ImageExtension
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if len(c.ImageExtension) < 2 || strings.ContainsAny(c.ImageExtension, `/\`) {
		return errors.Wrap(ErrInvalidConfig, errors.CodeInvalidConfig,
			fmt.Sprintf("image extension %q is not a file extension", c.ImageExtension))
	}
	return nil
}
