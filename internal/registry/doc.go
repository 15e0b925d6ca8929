// Package registry implements the name-to-frame mapping behind the cache:
// the frame table, the alias table, the per-source ownership index and the
// set of loaded sources.
//
// The registry does not parse or resolve anything. It receives frames that
// are already bound to textures and only tracks identity, ownership and
// eviction.
package registry
