package clockface

import (
	"fmt"
	"image/color"
)

// Point is a position in surface pixels, origin top-left, y growing downward.
type Point struct {
	X, Y float64
}

// Size is the pixel extent of a drawing area.
type Size struct {
	Width, Height int
}

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintFill fills the shape interior.
	PaintFill PaintStyle = iota

	// PaintStroke draws only the outline.
	PaintStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintFill:
		return "fill"
	case PaintStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how a primitive is drawn.
type Paint struct {
	Color       color.NRGBA
	Style       PaintStyle
	StrokeWidth float64
	// TextSize is the font size for DrawText and MeasureText.
	TextSize float64
}

// Surface is the set of drawing primitives a host offers the renderer.
type Surface interface {
	// DrawCircle draws a circle; stroke paints draw only the ring.
	DrawCircle(center Point, radius float64, paint Paint)

	// DrawLine draws a straight segment with paint's stroke width.
	DrawLine(from, to Point, paint Paint)

	// DrawText draws text with its baseline-left corner at origin.
	DrawText(text string, origin Point, paint Paint)

	// MeasureText returns the pixel bounds of text drawn with paint.
	MeasureText(text string, paint Paint) (width, height float64)
}
