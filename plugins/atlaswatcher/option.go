package atlaswatcher

import "github.com/bft-labs/framecache/pkg/framecache"

// WithAtlasWatcher returns a framecache Option that reloads descriptor
// files when they change.
//
// Usage:
//
//	cache, err := framecache.New(cfg,
//	    atlaswatcher.WithAtlasWatcher(atlaswatcher.Config{
//	        DebounceDelay: 200 * time.Millisecond,
//	    }),
//	)
func WithAtlasWatcher(cfg Config) framecache.Option {
	return framecache.WithPlugin(New(cfg))
}

// WithDefaultAtlasWatcher enables the watcher with a 100ms debounce.
func WithDefaultAtlasWatcher() framecache.Option {
	return WithAtlasWatcher(DefaultConfig())
}
