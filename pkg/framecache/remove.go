package framecache

import (
	"github.com/bft-labs/framecache/pkg/log"
)

// RemoveFrame removes the frame registered under name. If name is an
// alias, the frame it points to is removed. Every alias of the removed
// frame goes with it. Returns false if nothing matched.
func (c *Cache) RemoveFrame(name string) bool {
	canonical, ok := c.registry.Remove(name)
	if !ok {
		return false
	}
	c.evicted(EvictEvent{Reason: EvictRemoved, Names: []string{canonical}, Count: 1})
	return true
}

// RemoveFromSource removes every frame the source still owns and marks it
// unloaded, so the next load reads it again. Frames the source produced
// that a later load replaced are not touched. Returns the number removed.
func (c *Cache) RemoveFromSource(sourceID string) int {
	names := c.registry.RemoveSource(sourceID)
	c.unbind(sourceID)
	c.evicted(EvictEvent{Reason: EvictSource, Source: sourceID, Names: names, Count: len(names)})
	return len(names)
}

// RemoveFromFile is RemoveFromSource for a descriptor path.
func (c *Cache) RemoveFromFile(path string) int {
	return c.RemoveFromSource(c.SourceID(path))
}

// RemoveFromContent is RemoveFromSource for in-memory descriptor content.
func (c *Cache) RemoveFromContent(content []byte) int {
	return c.RemoveFromSource(ContentID(content))
}

// RemoveFromImage removes every frame cut from tex, whichever source
// loaded it. Textures are matched by identity only.
func (c *Cache) RemoveFromImage(tex *Texture) int {
	if tex == nil {
		return 0
	}
	names := c.registry.RemoveImage(tex)
	c.evicted(EvictEvent{Reason: EvictImage, Names: names, Count: len(names)})
	return len(names)
}

// RemoveUnused removes every frame no caller holds through Acquire or
// Frame.Retain. Returns the number removed.
func (c *Cache) RemoveUnused() int {
	names := c.registry.RemoveUnused()
	c.evicted(EvictEvent{Reason: EvictUnused, Names: names, Count: len(names)})
	return len(names)
}

// RemoveAll empties the cache and forgets every loaded source. Frames
// already handed out remain valid.
func (c *Cache) RemoveAll() {
	n := c.registry.RemoveAll()
	c.bindMu.Lock()
	c.bindings = make(map[string]binding)
	c.bindMu.Unlock()
	c.evicted(EvictEvent{Reason: EvictAll, Count: n})
}

func (c *Cache) evicted(ev EvictEvent) {
	if ev.Count == 0 {
		return
	}
	c.evictions.Add(uint64(ev.Count))
	fields := []log.Field{
		log.String("reason", string(ev.Reason)),
		log.Int("count", ev.Count),
	}
	if ev.Source != "" {
		fields = append(fields, log.Source(ev.Source))
	}
	if len(ev.Names) > 0 {
		fields = append(fields, log.Strings("names", ev.Names))
	}
	c.logger.Debug("frames removed", fields...)
	c.events.evict(ev)
}
