// Package atlaswatcher reloads descriptor files when they change on disk.
// Every file source loaded into the cache is watched; a write to it
// triggers a debounced Cache.Reload.
package atlaswatcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/framecache/pkg/framecache"
	"github.com/bft-labs/framecache/pkg/log"
)

// Plugin watches loaded descriptor files.
type Plugin struct {
	mu sync.Mutex

	debounceDelay time.Duration

	cache   *framecache.Cache
	logger  log.Logger
	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	sources map[string]struct{} // tracked descriptor paths
	dirs    map[string]struct{} // watched directories
	pending map[string]*time.Timer
}

// Config holds configuration options for the atlas watcher plugin.
type Config struct {
	// DebounceDelay is how long a file must stay quiet before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DebounceDelay: 100 * time.Millisecond}
}

// New creates an atlas watcher plugin.
func New(cfg Config) *Plugin {
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = 100 * time.Millisecond
	}
	return &Plugin{
		debounceDelay: cfg.DebounceDelay,
		sources:       make(map[string]struct{}),
		dirs:          make(map[string]struct{}),
		pending:       make(map[string]*time.Timer),
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "atlaswatcher"
}

// Initialize starts watching every file source already loaded.
func (p *Plugin) Initialize(ctx context.Context, cfg framecache.PluginConfig) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	watchCtx, cancel := context.WithCancel(ctx)

	p.mu.Lock()
	p.cache = cfg.Cache
	p.logger = cfg.Logger
	p.watcher = watcher
	p.ctx = watchCtx
	p.cancel = cancel
	// a fresh watcher knows no directories
	p.sources = make(map[string]struct{})
	p.dirs = make(map[string]struct{})
	p.mu.Unlock()

	for _, src := range cfg.Cache.FileSources() {
		p.track(src)
	}

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)

	p.logger.Info("atlas watcher plugin initialized", log.Int("sources", len(p.Tracked())))
	return nil
}

// Shutdown stops watching and cancels pending reloads.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
	}
	for src, t := range p.pending {
		t.Stop()
		delete(p.pending, src)
	}
	watcher := p.watcher
	p.watcher = nil
	p.mu.Unlock()

	p.wg.Wait()
	if watcher != nil {
		return watcher.Close()
	}
	return nil
}

// OnLoad starts watching newly loaded file sources.
func (p *Plugin) OnLoad(ev framecache.LoadEvent) {
	if ev.Result.Skipped {
		return
	}
	p.mu.Lock()
	running := p.watcher != nil
	cache := p.cache
	p.mu.Unlock()
	if !running {
		return
	}
	for _, src := range cache.FileSources() {
		if src == ev.Result.Source {
			p.track(src)
			return
		}
	}
}

// Tracked returns the descriptor paths being watched.
func (p *Plugin) Tracked() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.sources))
	for src := range p.sources {
		out = append(out, src)
	}
	return out
}

func (p *Plugin) track(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.watcher == nil {
		return
	}
	if _, ok := p.sources[source]; ok {
		return
	}
	dir := filepath.Dir(source)
	if _, ok := p.dirs[dir]; !ok {
		if err := p.watcher.Add(dir); err != nil {
			p.logger.Warn("atlas watcher: cannot watch directory",
				log.String("dir", dir),
				log.Err(err))
			return
		}
		p.dirs[dir] = struct{}{}
	}
	p.sources[source] = struct{}{}
	p.logger.Debug("atlas watcher: tracking", log.Source(source))
}

func (p *Plugin) untrack(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.sources, source)
}

func (p *Plugin) isTracked(source string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.sources[source]
	return ok
}

func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			source := filepath.Clean(event.Name)
			if !p.isTracked(source) {
				continue
			}
			p.debounceReload(source)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("atlas watcher: watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceReload(source string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.pending[source]; ok {
		t.Stop()
	}
	p.pending[source] = time.AfterFunc(p.debounceDelay, func() {
		p.reload(source)
	})
}

func (p *Plugin) reload(source string) {
	p.mu.Lock()
	delete(p.pending, source)
	ctx, cache := p.ctx, p.cache
	p.mu.Unlock()

	if ctx.Err() != nil {
		return
	}
	if !cache.HasLoaded(source) {
		p.untrack(source)
		p.logger.Debug("atlas watcher: source unloaded, no longer tracking", log.Source(source))
		return
	}

	res, err := cache.Reload(ctx, source)
	if err != nil {
		p.logger.Warn("atlas watcher: reload failed, keeping previous frames",
			log.Source(source),
			log.Err(err))
		return
	}
	p.logger.Info("atlas watcher: reloaded",
		log.Source(source),
		log.Int("frames", res.Added))
}

var (
	_ framecache.Plugin       = (*Plugin)(nil)
	_ framecache.LoadObserver = (*Plugin)(nil)
)
