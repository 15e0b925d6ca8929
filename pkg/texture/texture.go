package texture

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/jmgilman/go/fs/core"

	"github.com/bft-labs/framecache/internal/domain"
)

// Texture is a shared image handle. Frames compare textures by identity.
type Texture = domain.Texture

// New creates a caller-owned handle. It is never shared by a Cache.
func New(key string) *Texture {
	return domain.NewTexture(key)
}

// Cache resolves image paths to handles, returning the same *Texture for
// the same cleaned path until the entry is removed. Image bytes are not
// decoded; resolution only checks the file exists and records its size.
type Cache struct {
	fsys core.ReadFS

	mu       sync.Mutex
	textures map[string]*Texture
}

// NewCache creates a texture cache over fsys.
func NewCache(fsys core.ReadFS) *Cache {
	return &Cache{
		fsys:     fsys,
		textures: make(map[string]*Texture),
	}
}

// Resolve returns the handle for path, creating it on first use.
// A missing or unreadable image is an ImageLoadError.
func (c *Cache) Resolve(ctx context.Context, path string) (*Texture, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := filepath.Clean(path)

	c.mu.Lock()
	defer c.mu.Unlock()
	if tex, ok := c.textures[key]; ok {
		return tex, nil
	}

	info, err := c.fsys.Stat(key)
	if err != nil {
		return nil, domain.NewImageLoadError(key, err)
	}
	if info.IsDir() {
		return nil, domain.NewImageLoadError(key, fmt.Errorf("%s is a directory", key))
	}

	tex := domain.NewFileTexture(key, info.Size(), info.ModTime())
	c.textures[key] = tex
	return tex, nil
}

// Lookup returns the cached handle for path without touching the filesystem.
func (c *Cache) Lookup(path string) (*Texture, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	tex, ok := c.textures[filepath.Clean(path)]
	return tex, ok
}

// Remove forgets the handle for path. Frames that hold it keep it; the
// next Resolve creates a new handle.
func (c *Cache) Remove(path string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := filepath.Clean(path)
	_, ok := c.textures[key]
	delete(c.textures, key)
	return ok
}

// Len returns the number of cached handles.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.textures)
}
