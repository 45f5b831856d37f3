// Package raster is an offscreen clockface.Surface backed by an RGBA image.
// Shapes are filled with golang.org/x/image/vector and numerals are drawn with
// the fixed 7x13 basicfont face, so TextSize is ignored.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/reanimator/analog-clock/internal/clockface"
)

// Circle tessellation: one polygon edge per SegmentLength pixels of
// circumference, never fewer than MinSegments.
const (
	SegmentLength = 2.0
	MinSegments   = 24
)

// Surface draws onto an in-memory image.
type Surface struct {
	img  *image.RGBA
	z    *vector.Rasterizer
	face font.Face
}

var _ clockface.Surface = (*Surface)(nil)

// New returns a width x height surface cleared to background
func New(width, height int, background color.Color) *Surface {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	z := vector.NewRasterizer(width, height)
	z.DrawOp = draw.Over

	return &Surface{img: img, z: z, face: basicfont.Face7x13}
}

// Size returns the surface bounds in clockface units
func (s *Surface) Size() clockface.Size {
	b := s.img.Bounds()
	return clockface.Size{Width: b.Dx(), Height: b.Dy()}
}

// Image returns the backing image
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the current image as PNG
func (s *Surface) EncodePNG(w io.Writer) error {
	return png.Encode(w, s.img)
}

// DrawCircle fills a disc or, for stroke paints, a ring centered on radius
func (s *Surface) DrawCircle(center clockface.Point, radius float64, paint clockface.Paint) {
	s.begin()
	if paint.Style == clockface.PaintStroke {
		half := paint.StrokeWidth / 2
		s.circlePath(center, radius+half, false)
		if inner := radius - half; inner > 0 {
			s.circlePath(center, inner, true)
		}
	} else {
		s.circlePath(center, radius, false)
	}
	s.fill(paint.Color)
}

// DrawLine draws the segment as a quad paint.StrokeWidth pixels wide
func (s *Surface) DrawLine(from, to clockface.Point, paint clockface.Paint) {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 || paint.StrokeWidth <= 0 {
		return
	}

	half := paint.StrokeWidth / 2
	nx, ny := -dy/length*half, dx/length*half

	s.begin()
	s.z.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	s.z.LineTo(float32(to.X+nx), float32(to.Y+ny))
	s.z.LineTo(float32(to.X-nx), float32(to.Y-ny))
	s.z.LineTo(float32(from.X-nx), float32(from.Y-ny))
	s.z.ClosePath()
	s.fill(paint.Color)
}

// DrawText draws text with its baseline starting at origin
func (s *Surface) DrawText(text string, origin clockface.Point, paint clockface.Paint) {
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(paint.Color),
		Face: s.face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(math.Round(origin.X * 64)),
			Y: fixed.Int26_6(math.Round(origin.Y * 64)),
		},
	}
	d.DrawString(text)
}

// MeasureText returns the advance width and ascent of text
func (s *Surface) MeasureText(text string, paint clockface.Paint) (float64, float64) {
	width := font.MeasureString(s.face, text)
	return float64(width) / 64, float64(s.face.Metrics().Ascent) / 64
}

func (s *Surface) begin() {
	b := s.img.Bounds()
	s.z.Reset(b.Dx(), b.Dy())
	s.z.DrawOp = draw.Over
}

func (s *Surface) fill(c color.NRGBA) {
	s.z.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{})
}

// circlePath adds a closed polygon approximating the circle. Reversed
// contours cancel coverage, which punches the hole of a ring.
func (s *Surface) circlePath(center clockface.Point, radius float64, reverse bool) {
	n := int(2 * math.Pi * radius / SegmentLength)
	if n < MinSegments {
		n = MinSegments
	}

	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			a = -a
		}
		x := float32(center.X + radius*math.Cos(a))
		y := float32(center.Y + radius*math.Sin(a))
		if i == 0 {
			s.z.MoveTo(x, y)
		} else {
			s.z.LineTo(x, y)
		}
	}
	s.z.ClosePath()
}
