// Package unusedsweeper periodically evicts frames nobody holds.
// It is the background form of Cache.RemoveUnused, meant for long-running
// processes that load atlases on demand and never release them explicitly.
package unusedsweeper

import (
	"context"
	"sync"
	"time"

	"github.com/bft-labs/framecache/pkg/framecache"
	"github.com/bft-labs/framecache/pkg/log"
)

// Plugin sweeps unused frames on a fixed interval.
type Plugin struct {
	mu sync.RWMutex

	interval       time.Duration
	runImmediately bool

	cache  *framecache.Cache
	logger log.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup

	swept uint64
}

// Config holds configuration options for the sweeper plugin.
type Config struct {
	// Interval is how often unused frames are evicted.
	// Default: 5 minutes
	Interval time.Duration

	// RunImmediately sweeps once on startup.
	RunImmediately bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{Interval: 5 * time.Minute}
}

// New creates a sweeper plugin.
func New(cfg Config) *Plugin {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	return &Plugin{
		interval:       cfg.Interval,
		runImmediately: cfg.RunImmediately,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "unusedsweeper"
}

// Initialize starts the sweep loop.
func (p *Plugin) Initialize(ctx context.Context, cfg framecache.PluginConfig) error {
	sweepCtx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	p.cache = cfg.Cache
	p.logger = cfg.Logger
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Info("unused sweeper plugin initialized", log.Duration("interval", p.interval))

	p.wg.Add(1)
	go p.sweepLoop(sweepCtx)
	return nil
}

// Shutdown stops the sweep loop.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.RLock()
	cancel := p.cancel
	p.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
	return nil
}

// Swept returns the total number of frames this plugin has evicted.
func (p *Plugin) Swept() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.swept
}

func (p *Plugin) sweepLoop(ctx context.Context) {
	defer p.wg.Done()

	if p.runImmediately {
		p.sweepOnce()
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.sweepOnce()
		}
	}
}

// sweepOnce evicts unused frames and returns how many went.
func (p *Plugin) sweepOnce() int {
	p.mu.RLock()
	cache := p.cache
	p.mu.RUnlock()

	n := cache.RemoveUnused()
	if n == 0 {
		return 0
	}

	p.mu.Lock()
	p.swept += uint64(n)
	p.mu.Unlock()

	p.logger.Info("unused sweeper: evicted frames",
		log.Int("count", n),
		log.Int("remaining", cache.Len()))
	return n
}

var _ framecache.Plugin = (*Plugin)(nil)
