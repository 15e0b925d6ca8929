package domain

import (
	"fmt"
	"math"
	"sync/atomic"
)

// FrameSpec holds the geometry of a frame before it is bound to a texture.
type FrameSpec struct {
	Rect         Rect
	Offset       Point
	OriginalSize Size
	Rotated      bool
}

// Validate checks the geometry is usable: every value finite, no negative
// sizes.
func (s FrameSpec) Validate() error {
	for _, v := range []float64{
		s.Rect.X, s.Rect.Y, s.Rect.Width, s.Rect.Height,
		s.Offset.X, s.Offset.Y,
		s.OriginalSize.Width, s.OriginalSize.Height,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("non-finite geometry in rect %s offset %s size %s", s.Rect, s.Offset, s.OriginalSize)
		}
	}
	if s.Rect.Width < 0 || s.Rect.Height < 0 {
		return fmt.Errorf("negative rect size %s", s.Rect.Size())
	}
	if s.OriginalSize.Width < 0 || s.OriginalSize.Height < 0 {
		return fmt.Errorf("negative original size %s", s.OriginalSize)
	}
	return nil
}

// Frame is a named sub-region of a texture. Geometry is immutable after
// construction; only the external reference count changes.
type Frame struct {
	texture      *Texture
	rect         Rect
	offset       Point
	originalSize Size
	rotated      bool

	refs atomic.Int32
}

// NewFrame binds a spec to a texture. A zero original size defaults to the
// rect size.
func NewFrame(tex *Texture, spec FrameSpec) (*Frame, error) {
	if tex == nil {
		return nil, NewInvalidRecord("", "frame has no texture")
	}
	if err := spec.Validate(); err != nil {
		return nil, WrapInvalidRecord(err, "")
	}
	if spec.OriginalSize == (Size{}) {
		spec.OriginalSize = spec.Rect.Size()
	}
	return &Frame{
		texture:      tex,
		rect:         spec.Rect,
		offset:       spec.Offset,
		originalSize: spec.OriginalSize,
		rotated:      spec.Rotated,
	}, nil
}

// Texture returns the shared image the frame is cut from.
func (f *Frame) Texture() *Texture { return f.texture }

// Rect returns the region within the texture.
func (f *Frame) Rect() Rect { return f.rect }

// Offset returns the trim offset.
func (f *Frame) Offset() Point { return f.offset }

// OriginalSize returns the untrimmed size.
func (f *Frame) OriginalSize() Size { return f.originalSize }

// Rotated reports whether the region is stored rotated in the texture.
func (f *Frame) Rotated() bool { return f.rotated }

// Spec returns the frame geometry.
func (f *Frame) Spec() FrameSpec {
	return FrameSpec{Rect: f.rect, Offset: f.offset, OriginalSize: f.originalSize, Rotated: f.rotated}
}

// Retain records an external holder and returns the new count.
func (f *Frame) Retain() int32 {
	return f.refs.Add(1)
}

// Release drops an external holder and returns the new count.
// Releasing more than was retained panics.
func (f *Frame) Release() int32 {
	n := f.refs.Add(-1)
	if n < 0 {
		f.refs.Add(1)
		panic("framecache: frame released more times than retained")
	}
	return n
}

// RefCount returns the number of external holders.
func (f *Frame) RefCount() int32 {
	return f.refs.Load()
}

// InUse reports whether any external holder remains.
func (f *Frame) InUse() bool {
	return f.refs.Load() > 0
}
