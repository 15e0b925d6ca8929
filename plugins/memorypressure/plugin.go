// Package memorypressure evicts frames when the Go heap grows past a
// watermark. It first drops unused frames and, if configured, empties the
// whole cache when that was not enough.
package memorypressure

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/bft-labs/framecache/pkg/framecache"
	"github.com/bft-labs/framecache/pkg/log"
)

// Action is what a single check did.
type Action int

const (
	// ActionNone means the heap was under the watermark.
	ActionNone Action = iota
	// ActionSweep means unused frames were evicted.
	ActionSweep
	// ActionPurge means the cache was emptied.
	ActionPurge
)

func (a Action) String() string {
	switch a {
	case ActionSweep:
		return "sweep"
	case ActionPurge:
		return "purge"
	default:
		return "none"
	}
}

// Plugin watches heap usage and relieves pressure through the cache.
type Plugin struct {
	mu sync.RWMutex

	checkInterval time.Duration
	highWatermark uint64
	purgeAll      bool

	// readHeap reports the current heap size in bytes.
	readHeap func() uint64

	cache  *framecache.Cache
	logger log.Logger
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Config holds configuration options for the memory pressure plugin.
type Config struct {
	// CheckInterval is how often heap usage is sampled.
	// Default: 30 seconds
	CheckInterval time.Duration

	// HighWatermarkBytes is the heap size above which frames are evicted.
	// Default: 512 MiB
	HighWatermarkBytes uint64

	// PurgeAll empties the cache when evicting unused frames did not bring
	// the heap back under the watermark.
	PurgeAll bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CheckInterval:      30 * time.Second,
		HighWatermarkBytes: 512 << 20,
	}
}

// New creates a memory pressure plugin.
func New(cfg Config) *Plugin {
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = 30 * time.Second
	}
	if cfg.HighWatermarkBytes == 0 {
		cfg.HighWatermarkBytes = 512 << 20
	}
	return &Plugin{
		checkInterval: cfg.CheckInterval,
		highWatermark: cfg.HighWatermarkBytes,
		purgeAll:      cfg.PurgeAll,
		readHeap:      heapAlloc,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "memorypressure"
}

// Initialize starts the sampling loop.
func (p *Plugin) Initialize(ctx context.Context, cfg framecache.PluginConfig) error {
	checkCtx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	p.cache = cfg.Cache
	p.logger = cfg.Logger
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Info("memory pressure plugin initialized",
		log.String("watermark", humanize.IBytes(p.highWatermark)),
		log.Bool("purge_all", p.purgeAll))

	p.wg.Add(1)
	go p.checkLoop(checkCtx)
	return nil
}

// Shutdown stops the sampling loop.
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

// UnderPressure reports whether the heap is above the watermark.
func (p *Plugin) UnderPressure() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.readHeap() > p.highWatermark
}

// Check samples the heap once and evicts if needed.
func (p *Plugin) Check() Action {
	if !p.UnderPressure() {
		return ActionNone
	}

	p.mu.RLock()
	cache, purgeAll := p.cache, p.purgeAll
	p.mu.RUnlock()

	n := cache.RemoveUnused()
	runtime.GC()
	if !purgeAll || !p.UnderPressure() {
		p.logger.Warn("memory pressure: evicted unused frames", log.Int("count", n))
		return ActionSweep
	}

	remaining := cache.Len()
	cache.RemoveAll()
	runtime.GC()
	p.logger.Warn("memory pressure: cache purged",
		log.Int("unused", n),
		log.Int("purged", remaining))
	return ActionPurge
}

func (p *Plugin) checkLoop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Check()
		}
	}
}

func heapAlloc() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

var _ framecache.Plugin = (*Plugin)(nil)
