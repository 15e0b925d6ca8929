// Package framecache is the short import path for the frame cache.
//
// Example usage:
//
//	cache, err := framecache.LoadFiles(ctx, "assets/hero.plist", "assets/tiles.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	frame, ok := cache.GetFrame("hero_idle_0.png")
//
// The full API, including plugins and event handlers, lives in
// github.com/bft-labs/framecache/pkg/framecache.
package framecache

import (
	"context"

	"github.com/bft-labs/framecache/pkg/framecache"
)

// Cache is a named registry of sprite frames.
type Cache = framecache.Cache

// Config holds cache options. Use DefaultConfig() for sensible defaults.
type Config = framecache.Config

// Option customizes a Cache created with New.
type Option = framecache.Option

// Frame is a named region of a texture.
type Frame = framecache.Frame

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return framecache.DefaultConfig()
}

// New creates an empty cache reading from the local filesystem unless
// another is supplied with an option.
func New(cfg Config, opts ...Option) (*Cache, error) {
	return framecache.New(cfg, opts...)
}

// LoadFiles creates a cache with the default configuration and loads each
// descriptor into it. It stops at the first file that fails to load.
func LoadFiles(ctx context.Context, paths ...string) (*Cache, error) {
	cache, err := framecache.New(framecache.DefaultConfig())
	if err != nil {
		return nil, err
	}
	for _, p := range paths {
		if _, err := cache.LoadFile(ctx, p); err != nil {
			return nil, err
		}
	}
	return cache, nil
}
