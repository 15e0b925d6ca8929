package memorypressure

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/framecache/pkg/framecache"
)

// fakeHeap returns heap readings from a script, repeating the last one.
func fakeHeap(readings ...uint64) func() uint64 {
	i := 0
	return func() uint64 {
		v := readings[i]
		if i < len(readings)-1 {
			i++
		}
		return v
	}
}

func setup(t *testing.T, cfg Config, readings ...uint64) (*framecache.Cache, *Plugin, *framecache.Frame) {
	t.Helper()
	cfg.CheckInterval = time.Hour
	p := New(cfg)
	p.readHeap = fakeHeap(readings...)

	c, err := framecache.New(framecache.DefaultConfig(), framecache.WithPlugin(p))
	require.NoError(t, err)
	tex := framecache.NewTexture("sheet")
	for _, name := range []string{"idle", "run"} {
		f, err := framecache.NewFrame(tex, framecache.FrameSpec{Rect: framecache.Rect{Width: 2, Height: 2}})
		require.NoError(t, err)
		require.NoError(t, c.AddFrame(name, f))
	}
	held, ok := c.Acquire("run")
	require.True(t, ok)
	t.Cleanup(func() { held.Release() })

	require.NoError(t, c.Start(context.Background()))
	t.Cleanup(func() { _ = c.Stop() })
	return c, p, held
}

func TestCheck_UnderWatermark(t *testing.T) {
	c, p, _ := setup(t, Config{HighWatermarkBytes: 100}, 50)

	assert.Equal(t, ActionNone, p.Check())
	assert.Equal(t, 2, c.Len())
}

func TestCheck_SweepsUnused(t *testing.T) {
	c, p, _ := setup(t, Config{HighWatermarkBytes: 100}, 150, 150)

	assert.Equal(t, ActionSweep, p.Check())
	assert.Equal(t, []string{"run"}, c.Names())
}

func TestCheck_PurgesWhenSweepIsNotEnough(t *testing.T) {
	c, p, held := setup(t, Config{HighWatermarkBytes: 100, PurgeAll: true}, 150, 150)

	assert.Equal(t, ActionPurge, p.Check())
	assert.Equal(t, 0, c.Len())
	assert.True(t, held.InUse())
}

func TestCheck_SweepRelievesPressure(t *testing.T) {
	c, p, _ := setup(t, Config{HighWatermarkBytes: 100, PurgeAll: true}, 150, 80)

	assert.Equal(t, ActionSweep, p.Check())
	assert.Equal(t, 1, c.Len())
}

func TestNew_Defaults(t *testing.T) {
	p := New(Config{})
	assert.Equal(t, 30*time.Second, p.checkInterval)
	assert.Equal(t, uint64(512<<20), p.highWatermark)
	assert.False(t, p.purgeAll)
	assert.Equal(t, "memorypressure", p.Name())
	assert.Equal(t, "purge", ActionPurge.String())
}
