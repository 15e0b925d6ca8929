package framecache

import (
	"github.com/bft-labs/framecache/internal/domain"
	"github.com/bft-labs/framecache/pkg/atlas"
	"github.com/bft-labs/framecache/pkg/log"
)

// Re-exported domain types so callers need a single import.
type (
	// Frame is a named region of a texture with an external reference count.
	Frame = domain.Frame

	// FrameSpec is frame geometry before it is bound to a texture.
	FrameSpec = domain.FrameSpec

	// Rect, Point and Size are atlas pixel geometry.
	Rect  = domain.Rect
	Point = domain.Point
	Size  = domain.Size

	// Texture is a shared image handle compared by identity.
	Texture = domain.Texture

	// Warning is a non-fatal problem with one record or alias.
	Warning = atlas.Warning

	// Logger is the structured logger used by the cache.
	Logger = log.Logger
)

// Error codes, see the errors section of the package documentation.
const (
	CodeMalformedDocument = domain.CodeMalformedDocument
	CodeInvalidRecord     = domain.CodeInvalidRecord
	CodeImageLoadFailed   = domain.CodeImageLoadFailed
)

// Lifecycle errors.
var (
	ErrAlreadyRunning = domain.ErrAlreadyRunning
	ErrNotRunning     = domain.ErrNotRunning
	ErrInvalidConfig  = domain.ErrInvalidConfig
)

// NewFrame binds geometry to a texture for use with Cache.AddFrame.
func NewFrame(tex *Texture, spec FrameSpec) (*Frame, error) {
	return domain.NewFrame(tex, spec)
}

// NewTexture creates a caller-owned texture handle.
func NewTexture(key string) *Texture {
	return domain.NewTexture(key)
}

// IsMalformedDocument reports whether err means a descriptor could not be parsed.
func IsMalformedDocument(err error) bool { return domain.IsMalformedDocument(err) }

// IsImageLoadError reports whether err means an image could not be resolved.
func IsImageLoadError(err error) bool { return domain.IsImageLoadError(err) }

// IsInvalidRecord reports whether err means a single record was rejected.
func IsInvalidRecord(err error) bool { return domain.IsInvalidRecord(err) }
