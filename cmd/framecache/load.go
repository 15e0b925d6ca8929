package main

import (
	"context"

	"github.com/bft-labs/framecache/pkg/framecache"
	"github.com/bft-labs/framecache/pkg/log"
)

// loadAll loads every descriptor, honoring the texture override.
func (a *app) loadAll(ctx context.Context, cache *framecache.Cache, paths []string) ([]framecache.LoadResult, error) {
	texture, err := a.texturePath()
	if err != nil {
		return nil, err
	}

	results := make([]framecache.LoadResult, 0, len(paths))
	for _, p := range paths {
		var res framecache.LoadResult
		if texture != "" {
			res, err = cache.LoadFileWithTexture(ctx, p, texture)
		} else {
			res, err = cache.LoadFile(ctx, p)
		}
		if err != nil {
			return results, err
		}
		for _, w := range res.Warnings {
			a.logger.Warn("skipped record", log.Source(res.Source), log.Err(w))
		}
		results = append(results, res)
	}
	return results, nil
}
