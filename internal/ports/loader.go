package ports

import (
	"context"

	"github.com/bft-labs/framecache/pkg/atlas"
)

// DocumentLoader turns a descriptor source into an ordered document.
type DocumentLoader interface {
	// LoadFile reads and parses the descriptor at path.
	// Returns a MalformedDocument error if it cannot be read or decoded.
	LoadFile(ctx context.Context, path string) (*atlas.Document, error)

	// Parse decodes in-memory descriptor content. KindUnknown sniffs.
	Parse(ctx context.Context, content []byte, kind atlas.Kind) (*atlas.Document, error)
}
