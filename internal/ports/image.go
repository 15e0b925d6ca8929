package ports

import (
	"context"

	"github.com/bft-labs/framecache/internal/domain"
)

// ImageProvider resolves image paths to shared texture handles.
type ImageProvider interface {
	// Resolve returns the handle for path. Repeated calls for the same path
	// should return the same handle. Returns an ImageLoadError on failure.
	Resolve(ctx context.Context, path string) (*domain.Texture, error)
}
