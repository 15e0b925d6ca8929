package memorypressure

import "github.com/bft-labs/framecache/pkg/framecache"

// WithMemoryPressure returns a framecache Option that evicts frames when
// the heap exceeds the configured watermark.
//
// Usage:
//
//	cache, err := framecache.New(cfg,
//	    memorypressure.WithMemoryPressure(memorypressure.Config{
//	        HighWatermarkBytes: 256 << 20,
//	        PurgeAll:           true,
//	    }),
//	)
func WithMemoryPressure(cfg Config) framecache.Option {
	return framecache.WithPlugin(New(cfg))
}

// WithDefaultMemoryPressure uses a 512 MiB watermark and never purges.
func WithDefaultMemoryPressure() framecache.Option {
	return WithMemoryPressure(DefaultConfig())
}
