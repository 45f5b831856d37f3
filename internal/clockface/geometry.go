package clockface

import "math"

// Layout constants in surface pixels
const (
	// Padding is kept between the numeral ring and the widget edge.
	Padding = 50
	// NumeralSpacing is added to Padding; unused by the current face.
	NumeralSpacing = 0

	// BorderInset pulls the border circle inside the padded edge.
	BorderInset   = 10
	BorderWidth   = 4
	CenterDotSize = 8

	NumeralTextSize = 14
)

// Geometry holds the dimensions derived from the drawing bounds. All values
// use integer pixel arithmetic.
type Geometry struct {
	Width  int
	Height int

	Radius             int
	Padding            int
	HandTruncation     int
	HourHandTruncation int
}

// ComputeGeometry derives a Geometry from the drawing bounds
func ComputeGeometry(bounds Size) Geometry {
	minSide := min(bounds.Width, bounds.Height)
	padding := NumeralSpacing + Padding

	return Geometry{
		Width:              bounds.Width,
		Height:             bounds.Height,
		Radius:             minSide/2 - padding,
		Padding:            padding,
		HandTruncation:     minSide / 20,
		HourHandTruncation: minSide / 10,
	}
}

// Center returns the middle of the drawing area
func (g Geometry) Center() Point {
	return Point{X: float64(g.Width / 2), Y: float64(g.Height / 2)}
}

// BorderRadius is the radius of the outer face circle
func (g Geometry) BorderRadius() float64 {
	return float64(g.Radius + g.Padding - BorderInset)
}

// HandLength is the length of the minute and second hands
func (g Geometry) HandLength() float64 {
	return float64(g.Radius - g.HandTruncation)
}

// HourHandLength is the length of the hour hand
func (g Geometry) HourHandLength() float64 {
	return float64(g.Radius - g.HandTruncation - g.HourHandTruncation)
}

// NumeralAngle returns the angle in radians at which hour numeral h (1..12)
// is placed. Angles grow clockwise on screen; 3 sits at 0 and 12 at -π/2.
func NumeralAngle(h int) float64 {
	return math.Pi / 6 * float64(h-3)
}

// HandAngle converts a position on the 60-unit dial to radians, with 0 at
// twelve o'clock.
func HandAngle(value float64) float64 {
	return math.Pi*value/30 - math.Pi/2
}

// PolarPoint returns the point at distance length from center along angle
func PolarPoint(center Point, length, angle float64) Point {
	return Point{
		X: center.X + math.Cos(angle)*length,
		Y: center.Y + math.Sin(angle)*length,
	}
}
