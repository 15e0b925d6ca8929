package framecache

import (
	"sync"
	"testing"

	"github.com/jmgilman/go/fs/billy"
	"github.com/stretchr/testify/require"
)

const heroPlist = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
  <key>frames</key>
  <dict>
    <key>hero_0</key>
    <dict>
      <key>aliases</key><array><string>hero</string></array>
      <key>textureRect</key><string>{{0,0},{32,32}}</string>
      <key>spriteOffset</key><string>{0,0}</string>
      <key>spriteSourceSize</key><string>{32,32}</string>
      <key>textureRotated</key><false/>
    </dict>
    <key>hero_1</key>
    <dict>
      <key>textureRect</key><string>{{32,0},{32,32}}</string>
    </dict>
    <key>hero_broken</key>
    <dict>
      <key>spriteOffset</key><string>{0,0}</string>
    </dict>
  </dict>
  <key>metadata</key>
  <dict>
    <key>format</key><integer>3</integer>
    <key>textureFileName</key><string>hero_sheet.png</string>
  </dict>
</dict>
</plist>`

// enemyJSON has no texture name, so the image path is derived.
const enemyJSON = `{
  "frames": {
    "enemy_0": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}},
    "hero_1":  {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}}
  }
}`

const tilesYAML = `
frames:
  grass:
    x: 0
    y: 0
    width: 8
    height: 8
  water:
    x: 8
    y: 0
    width: 8
    height: 8
`

func newTestFS(t *testing.T) *billy.MemoryFS {
	t.Helper()
	fsys := billy.NewMemory()
	require.NoError(t, fsys.MkdirAll("assets", 0o755))
	files := map[string]string{
		"assets/hero.plist":     heroPlist,
		"assets/hero_sheet.png": "png",
		"assets/enemy.json":     enemyJSON,
		"assets/enemy.png":      "png",
		"assets/tiles.yaml":     tilesYAML,
		"assets/tiles.png":      "png",
		"assets/broken.json":    `{"frames": `,
		"assets/orphan.json":    enemyJSON,
	}
	for name, content := range files {
		require.NoError(t, fsys.WriteFile(name, []byte(content), 0o644))
	}
	return fsys
}

func newTestCache(t *testing.T, opts ...Option) (*Cache, *billy.MemoryFS) {
	t.Helper()
	fsys := newTestFS(t)
	c, err := New(DefaultConfig(), append([]Option{WithFilesystem(fsys)}, opts...)...)
	require.NoError(t, err)
	return c, fsys
}

// recordingHandler captures events.
type recordingHandler struct {
	NopEventHandler
	mu     sync.Mutex
	loads  []LoadEvent
	evicts []EvictEvent
	states []StateChangeEvent
}

func (h *recordingHandler) OnLoad(e LoadEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.loads = append(h.loads, e)
}

func (h *recordingHandler) OnEvict(e EvictEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.evicts = append(h.evicts, e)
}

func (h *recordingHandler) OnStateChange(e StateChangeEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.states = append(h.states, e)
}
