package framecache

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlugin struct {
	name    string
	initErr error

	mu       sync.Mutex
	calls    *[]string
	observed int
	cache    *Cache
}

func (p *fakePlugin) Name() string { return p.name }

func (p *fakePlugin) Initialize(ctx context.Context, cfg PluginConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.calls = append(*p.calls, "init:"+p.name)
	p.cache = cfg.Cache
	return p.initErr
}

func (p *fakePlugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	*p.calls = append(*p.calls, "shutdown:"+p.name)
	return nil
}

func (p *fakePlugin) OnLoad(LoadEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observed++
}

func TestCache_StartStop(t *testing.T) {
	var calls []string
	a := &fakePlugin{name: "a", calls: &calls}
	b := &fakePlugin{name: "b", calls: &calls}
	h := &recordingHandler{}
	c, _ := newTestCache(t, WithPlugin(a), WithPlugin(b), WithEventHandler(h))
	ctx := context.Background()

	assert.Equal(t, StateStopped, c.Status())
	assert.ErrorIs(t, c.Stop(), ErrNotRunning)

	require.NoError(t, c.Start(ctx))
	assert.Equal(t, StateRunning, c.Status())
	assert.Same(t, c, a.cache)
	assert.ErrorIs(t, c.Start(ctx), ErrAlreadyRunning)

	_, err := c.LoadFile(ctx, "assets/tiles.yaml")
	require.NoError(t, err)
	assert.Equal(t, 1, a.observed)

	require.NoError(t, c.Stop())
	assert.Equal(t, StateStopped, c.Status())
	assert.Equal(t, 2, c.Len(), "stop leaves frames in place")
	assert.True(t, c.HasLoadedFile("assets/tiles.yaml"))
	assert.Equal(t, []string{"init:a", "init:b", "shutdown:b", "shutdown:a"}, calls)

	require.NoError(t, c.Start(ctx), "restart after stop")
	_, ok := c.GetFrame("grass")
	assert.True(t, ok)
	require.NoError(t, c.Stop())

	require.Len(t, h.states, 8)
	assert.Equal(t, StateStarting, h.states[0].Current)
	assert.Equal(t, StateStopped, h.states[3].Current)
	assert.Equal(t, StateStopped, h.states[7].Current)
}

func TestCache_StartPluginFailure(t *testing.T) {
	var calls []string
	a := &fakePlugin{name: "a", calls: &calls}
	b := &fakePlugin{name: "b", calls: &calls, initErr: errors.New("no watcher")}
	c, _ := newTestCache(t, WithPlugin(a), WithPlugin(b))

	err := c.Start(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateCrashed, c.Status())
	assert.Equal(t, []string{"init:a", "init:b", "shutdown:a"}, calls)

	// a crashed cache can be started again
	b.initErr = nil
	require.NoError(t, c.Start(context.Background()))
	assert.Equal(t, StateRunning, c.Status())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "Running", StateRunning.String())
	assert.Equal(t, "Crashed", StateCrashed.String())
}
