package atlas

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/fs/core"

	"github.com/bft-labs/framecache/internal/domain"
)

// Loader reads descriptors from a filesystem.
type Loader struct {
	fsys core.ReadFS
}

// NewLoader creates a loader reading from fsys.
func NewLoader(fsys core.ReadFS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile reads and parses the descriptor at path. The syntax is taken
// from the extension and sniffed from the content when the extension is
// not recognized. A missing or unreadable file is a MalformedDocument.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := l.fsys.ReadFile(path)
	if err != nil {
		return nil, domain.NewMalformedDocument(path, err)
	}
	return Parse(path, content, KindFromPath(path))
}

// Parse decodes in-memory descriptor content.
func (l *Loader) Parse(ctx context.Context, content []byte, kind Kind) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return Parse("<content>", content, kind)
}

// TexturePath works out which image a descriptor file binds to: the
// texture named in its metadata, relative to the descriptor's directory,
// or else the descriptor path with its extension replaced by ext.
func TexturePath(descriptorPath string, doc *Document, ext string) string {
	if doc != nil && doc.Texture != "" {
		if filepath.IsAbs(doc.Texture) {
			return filepath.Clean(doc.Texture)
		}
		return filepath.Join(filepath.Dir(descriptorPath), doc.Texture)
	}
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return strings.TrimSuffix(descriptorPath, filepath.Ext(descriptorPath)) + ext
}
