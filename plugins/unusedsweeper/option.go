package unusedsweeper

import "github.com/bft-labs/framecache/pkg/framecache"

// WithUnusedSweeper returns a framecache Option that evicts unused frames
// on the configured interval.
func WithUnusedSweeper(cfg Config) framecache.Option {
	return framecache.WithPlugin(New(cfg))
}

// WithDefaultUnusedSweeper sweeps every 5 minutes.
func WithDefaultUnusedSweeper() framecache.Option {
	return WithUnusedSweeper(DefaultConfig())
}
