package framecache

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"

	"github.com/bft-labs/framecache/internal/app"
	"github.com/bft-labs/framecache/internal/registry"
	"github.com/bft-labs/framecache/pkg/atlas"
	"github.com/bft-labs/framecache/pkg/log"
	"github.com/bft-labs/framecache/pkg/texture"
)

// Cache is a named registry of sprite frames loaded from atlas descriptors.
// All methods are safe for concurrent use. Create one with New; there is
// no package-level instance.
type Cache struct {
	config    Config
	registry  *registry.Registry
	loader    DocumentLoader
	images    ImageProvider
	logger    log.Logger
	events    *emitter
	lifecycle *app.Lifecycle
	plugins   []Plugin

	// absPaths is set when reading from the local disk, whose root is "/".
	absPaths bool

	bindMu   sync.Mutex
	bindings map[string]binding

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64

	mu sync.Mutex
}

// binding remembers how a file source was loaded so it can be reloaded.
type binding struct {
	path        string
	texturePath string
	texture     *Texture
}

// New creates an empty cache. The cache is usable immediately; Start is
// only needed to run plugins.
func New(cfg Config, opts ...Option) (*Cache, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateModuleVersions(); err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	var fsys core.ReadFS = o.fsys
	absPaths := false
	if fsys == nil {
		fsys = billy.NewLocal()
		absPaths = true
	}
	if o.loader == nil {
		o.loader = atlas.NewLoader(fsys)
	}
	if o.images == nil {
		o.images = texture.NewCache(fsys)
	}

	events := &emitter{handler: o.eventHandler}
	for _, p := range o.plugins {
		if obs, ok := p.(LoadObserver); ok {
			events.observers = append(events.observers, obs)
		}
	}

	return &Cache{
		config:    cfg,
		registry:  registry.New(),
		loader:    o.loader,
		images:    o.images,
		logger:    o.logger,
		events:    events,
		lifecycle: app.NewLifecycle(o.logger, events),
		plugins:   o.plugins,
		absPaths:  absPaths,
		bindings:  make(map[string]binding),
	}, nil
}

// Start initializes plugins. Returns ErrAlreadyRunning if already started.
// The context bounds the plugins' lifetime.
func (c *Cache) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lifecycle.CanStart() {
		return ErrAlreadyRunning
	}
	if err := c.lifecycle.TransitionTo(app.StateStarting, "Start() called"); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	c.lifecycle.SetCancel(cancel)

	pluginCfg := PluginConfig{Cache: c, Logger: c.logger}
	for i, p := range c.plugins {
		if err := p.Initialize(runCtx, pluginCfg); err != nil {
			c.logger.Error("plugin initialization failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			cancel()
			c.shutdownPlugins(c.plugins[:i])
			_ = c.lifecycle.TransitionTo(app.StateCrashed, "plugin init failed: "+p.Name())
			return err
		}
		c.logger.Info("plugin initialized", log.String("plugin", p.Name()))
	}

	return c.lifecycle.TransitionTo(app.StateRunning, "plugins initialized")
}

// Stop shuts plugins down in reverse order. Loaded frames stay in the
// cache; call RemoveAll to empty it. Returns ErrNotRunning if the cache was
// not started.
func (c *Cache) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.lifecycle.CanStop() {
		return ErrNotRunning
	}
	if err := c.lifecycle.TransitionTo(app.StateStopping, "Stop() called"); err != nil {
		return err
	}

	c.lifecycle.Cancel()
	c.shutdownPlugins(c.plugins)

	return c.lifecycle.TransitionTo(app.StateStopped, "graceful shutdown")
}

func (c *Cache) shutdownPlugins(plugins []Plugin) {
	ctx := context.Background()
	for i := len(plugins) - 1; i >= 0; i-- {
		p := plugins[i]
		if err := p.Shutdown(ctx); err != nil {
			c.logger.Error("plugin shutdown failed",
				log.String("plugin", p.Name()),
				log.Err(err))
			continue
		}
		c.logger.Info("plugin shutdown complete", log.String("plugin", p.Name()))
	}
}

// Status returns the current lifecycle state.
func (c *Cache) Status() State {
	return State(c.lifecycle.State())
}

// SourceID returns the source ID a descriptor path is registered under.
func (c *Cache) SourceID(path string) string {
	if c.absPaths {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return filepath.Clean(path)
}

func (c *Cache) bind(source string, b binding) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	c.bindings[source] = b
}

func (c *Cache) unbind(source string) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	delete(c.bindings, source)
}

func (c *Cache) binding(source string) (binding, bool) {
	c.bindMu.Lock()
	defer c.bindMu.Unlock()
	b, ok := c.bindings[source]
	return b, ok
}

// validateModuleVersions checks that the bundled packages agree on versions.
func validateModuleVersions() error {
	modules := map[string]struct {
		version    string
		minVersion string
	}{
		"atlas": {atlas.Version, atlas.MinCompatibleVersion},
		"log":   {log.Version, log.MinCompatibleVersion},
	}

	for name, m := range modules {
		if !isVersionCompatible(m.version, m.minVersion) {
			return fmt.Errorf("module %s version %s is below minimum compatible version %s",
				name, m.version, m.minVersion)
		}
	}
	return nil
}

// isVersionCompatible reports whether version >= minVersion, both in
// "major.minor.patch" form.
func isVersionCompatible(version, minVersion string) bool {
	var vMajor, vMinor, vPatch int
	var mMajor, mMinor, mPatch int

	_, _ = fmt.Sscanf(version, "%d.%d.%d", &vMajor, &vMinor, &vPatch)
	_, _ = fmt.Sscanf(minVersion, "%d.%d.%d", &mMajor, &mMinor, &mPatch)

	if vMajor != mMajor {
		return vMajor > mMajor
	}
	if vMinor != mMinor {
		return vMinor > mMinor
	}
	return vPatch >= mPatch
}
