package domain

import (
	stderrors "errors"
	"fmt"
	"math"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFrame(t *testing.T) {
	tex := NewTexture("hero.png")

	t.Run("defaults original size to rect", func(t *testing.T) {
		f, err := NewFrame(tex, FrameSpec{Rect: Rect{X: 2, Y: 4, Width: 32, Height: 16}})
		require.NoError(t, err)
		assert.Equal(t, Size{Width: 32, Height: 16}, f.OriginalSize())
		assert.Same(t, tex, f.Texture())
	})

	t.Run("keeps explicit original size", func(t *testing.T) {
		f, err := NewFrame(tex, FrameSpec{
			Rect:         Rect{Width: 30, Height: 14},
			Offset:       Point{X: 1, Y: -1},
			OriginalSize: Size{Width: 32, Height: 16},
			Rotated:      true,
		})
		require.NoError(t, err)
		assert.Equal(t, Size{Width: 32, Height: 16}, f.OriginalSize())
		assert.Equal(t, Point{X: 1, Y: -1}, f.Offset())
		assert.True(t, f.Rotated())
	})

	t.Run("rejects nil texture", func(t *testing.T) {
		_, err := NewFrame(nil, FrameSpec{Rect: Rect{Width: 1, Height: 1}})
		require.Error(t, err)
		assert.True(t, IsInvalidRecord(err))
	})

	t.Run("rejects negative size", func(t *testing.T) {
		_, err := NewFrame(tex, FrameSpec{Rect: Rect{Width: -1, Height: 1}})
		require.Error(t, err)
		assert.True(t, IsInvalidRecord(err))
	})

	nonFinite := []struct {
		name string
		spec FrameSpec
	}{
		{"NaN width", FrameSpec{Rect: Rect{Width: math.NaN(), Height: 1}}},
		{"infinite x", FrameSpec{Rect: Rect{X: math.Inf(1), Width: 1, Height: 1}}},
		{"NaN offset", FrameSpec{Rect: Rect{Width: 1, Height: 1}, Offset: Point{Y: math.NaN()}}},
		{"negative infinite original size", FrameSpec{
			Rect:         Rect{Width: 1, Height: 1},
			OriginalSize: Size{Width: math.Inf(-1), Height: 1},
		}},
	}
	for _, tt := range nonFinite {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewFrame(tex, tt.spec)
			require.Error(t, err)
			assert.True(t, IsInvalidRecord(err))
		})
	}
}

func TestFrame_RefCount(t *testing.T) {
	f, err := NewFrame(NewTexture("t"), FrameSpec{Rect: Rect{Width: 1, Height: 1}})
	require.NoError(t, err)

	assert.False(t, f.InUse())
	assert.Equal(t, int32(1), f.Retain())
	assert.Equal(t, int32(2), f.Retain())
	assert.True(t, f.InUse())
	assert.Equal(t, int32(1), f.Release())
	assert.Equal(t, int32(0), f.Release())
	assert.False(t, f.InUse())

	assert.Panics(t, func() { f.Release() })
	assert.Equal(t, int32(0), f.RefCount())
}

func TestErrorCodes(t *testing.T) {
	cause := stderrors.New("unexpected EOF")

	malformed := NewMalformedDocument("hero.plist", cause)
	assert.True(t, IsMalformedDocument(malformed))
	assert.False(t, IsImageLoadError(malformed))
	assert.Equal(t, CodeMalformedDocument, errors.GetCode(malformed))
	assert.ErrorIs(t, malformed, cause)

	image := NewImageLoadError("hero.png", cause)
	assert.True(t, IsImageLoadError(image))

	wrapped := fmt.Errorf("load: %w", errors.Wrap(image, errors.CodeExecutionFailed, "outer"))
	assert.True(t, IsImageLoadError(wrapped))

	record := NewInvalidRecord("hero_0", "missing frame rect")
	assert.True(t, IsInvalidRecord(record))
	var pe errors.PlatformError
	require.True(t, errors.As(record, &pe))
	assert.Equal(t, "hero_0", pe.Context()["frame"])

	assert.False(t, IsInvalidRecord(nil))
	assert.False(t, IsInvalidRecord(cause))
}

func TestRect(t *testing.T) {
	r := Rect{X: 1, Y: 2, Width: 3, Height: 4}
	assert.Equal(t, "{{1,2},{3,4}}", r.String())
	assert.False(t, r.Empty())
	assert.True(t, Rect{Width: 0, Height: 4}.Empty())
}
