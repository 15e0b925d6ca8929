// Package framecache is a named cache for 2D sprite frames cut from texture
// atlases.
//
// A descriptor file (a cocos2d/TexturePacker plist, or the same layout in
// JSON, YAML or TOML) lists named regions of one image. Loading it
// registers every region as a [Frame] that can be fetched by name in
// constant time. Frames are shared: the cache hands out the same *Frame to
// every caller, and a frame is considered in use while any caller holds a
// reference taken with [Cache.Acquire] or [Frame.Retain].
//
// # Basic Usage
//
//	cache, err := framecache.New(framecache.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	res, err := cache.LoadFile(ctx, "assets/hero.plist")
//	if err != nil {
//	    return err
//	}
//	for _, w := range res.Warnings {
//	    log.Printf("skipped %s: %v", w.Name, w.Err)
//	}
//
//	frame, ok := cache.Acquire("hero_idle_0.png")
//	defer frame.Release()
//
// # Sources
//
// Every load is keyed by a source ID: the cleaned descriptor path for
// files, or the content digest (see [ContentID]) for in-memory content.
// Loading a source that is already loaded does nothing. A source stays
// loaded until [Cache.RemoveFromSource] or [Cache.RemoveAll].
//
// When two sources define the same name, the later load wins and owns the
// name, so removing the earlier source leaves it alone.
//
// # Eviction
//
// Frames leave the cache by name ([Cache.RemoveFrame]), by source, by
// texture identity ([Cache.RemoveFromImage]), when unused
// ([Cache.RemoveUnused]) or all at once ([Cache.RemoveAll]). Removing a
// frame never invalidates a *Frame a caller already holds.
//
// # Errors
//
// Load failures are github.com/jmgilman/go/errors PlatformErrors:
//
//   - MALFORMED_DOCUMENT: the descriptor could not be read or parsed
//   - IMAGE_LOAD_FAILED: the texture could not be resolved
//
// Both leave the cache untouched. Individual bad records are not errors;
// they are reported as INVALID_RECORD warnings in [LoadResult].
//
// # Plugins
//
// Background behaviors such as hot reload or periodic sweeping are
// plugins registered with [WithPlugin] and run between [Cache.Start] and
// [Cache.Stop]:
//
//	cache, err := framecache.New(cfg,
//	    atlaswatcher.WithAtlasWatcher(atlaswatcher.DefaultConfig()),
//	    unusedsweeper.WithUnusedSweeper(unusedsweeper.DefaultConfig()),
//	)
package framecache
