package domain

import "fmt"

// Point is a 2D offset in atlas pixels.
type Point struct {
	X float64
	Y float64
}

// Size is a width/height pair in atlas pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned region of a texture.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

func (r Rect) String() string {
	return fmt.Sprintf("{{%g,%g},{%g,%g}}", r.X, r.Y, r.Width, r.Height)
}

func (p Point) String() string {
	return fmt.Sprintf("{%g,%g}", p.X, p.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("{%g,%g}", s.Width, s.Height)
}
