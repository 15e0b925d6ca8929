package framecache

import (
	"github.com/bft-labs/framecache/internal/domain"
	"github.com/bft-labs/framecache/pkg/log"
)

// Stats is a snapshot of cache contents and counters.
type Stats struct {
	Frames    int
	Aliases   int
	Sources   int
	InUse     int
	Textures  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// AddFrame registers frame under name, replacing any frame already there.
// A frame added this way belongs to no source. A nil frame, or one with no
// texture (build frames with NewFrame), is refused with an INVALID_RECORD
// error and the cache is left unchanged.
func (c *Cache) AddFrame(name string, frame *Frame) error {
	if !c.registry.Add(name, frame) {
		err := domain.NewInvalidRecord(name, "frame is nil or has no texture")
		c.logger.Warn("ignoring frame", log.FrameName(name), log.Err(err))
		return err
	}
	return nil
}

// GetFrame returns the frame registered under name or one of its aliases.
// The returned frame is shared; use Acquire to hold it across RemoveUnused.
func (c *Cache) GetFrame(name string) (*Frame, bool) {
	f, ok := c.registry.Lookup(name)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return f, ok
}

// Acquire looks up name and retains the frame. The caller must call
// Frame.Release when done with it.
func (c *Cache) Acquire(name string) (*Frame, bool) {
	f, ok := c.GetFrame(name)
	if !ok {
		return nil, false
	}
	f.Retain()
	return f, true
}

// HasLoaded reports whether sourceID has been loaded.
func (c *Cache) HasLoaded(sourceID string) bool {
	return c.registry.IsLoaded(sourceID)
}

// HasLoadedFile reports whether the descriptor at path has been loaded.
func (c *Cache) HasLoadedFile(path string) bool {
	return c.registry.IsLoaded(c.SourceID(path))
}

// Resolve returns the canonical name for name, which may be an alias.
func (c *Cache) Resolve(name string) (string, bool) {
	return c.registry.Resolve(name)
}

// SourceOf returns the source that produced name, if any.
func (c *Cache) SourceOf(name string) (string, bool) {
	canonical, ok := c.registry.Resolve(name)
	if !ok {
		return "", false
	}
	return c.registry.Owner(canonical)
}

// AliasesOf returns the aliases of a canonical frame name.
func (c *Cache) AliasesOf(name string) []string {
	return c.registry.AliasesOf(name)
}

// SourceNames returns the names a source currently owns.
func (c *Cache) SourceNames(sourceID string) []string {
	return c.registry.SourceNames(sourceID)
}

// Len returns the number of frames.
func (c *Cache) Len() int {
	return c.registry.Len()
}

// Names returns every canonical frame name, sorted.
func (c *Cache) Names() []string {
	return c.registry.Names()
}

// Sources returns every loaded source ID, sorted.
func (c *Cache) Sources() []string {
	return c.registry.Sources()
}

// FileSources returns the loaded sources that came from descriptor files
// and can therefore be reloaded.
func (c *Cache) FileSources() []string {
	var out []string
	for _, src := range c.registry.Sources() {
		if _, ok := c.binding(src); ok {
			out = append(out, src)
		}
	}
	return out
}

// Stats returns a snapshot of the cache.
func (c *Cache) Stats() Stats {
	s := c.registry.Stats()
	return Stats{
		Frames:    s.Frames,
		Aliases:   s.Aliases,
		Sources:   s.Sources,
		InUse:     s.InUse,
		Textures:  s.Textures,
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
	}
}
