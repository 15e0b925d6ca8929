package framecache

import (
	"context"

	"github.com/bft-labs/framecache/pkg/log"
)

// Plugin is an optional background behavior attached to a Cache.
type Plugin interface {
	// Name identifies the plugin in logs.
	Name() string

	// Initialize starts the plugin. Long-running work must run in its own
	// goroutine and stop when ctx is canceled.
	Initialize(ctx context.Context, cfg PluginConfig) error

	// Shutdown stops the plugin and waits for its goroutines.
	Shutdown(ctx context.Context) error
}

// PluginConfig is what a plugin receives at initialization.
type PluginConfig struct {
	Cache  *Cache
	Logger log.Logger
}

// LoadObserver is implemented by plugins that want every LoadEvent.
type LoadObserver interface {
	OnLoad(LoadEvent)
}
