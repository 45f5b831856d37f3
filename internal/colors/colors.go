// Package colors parses the color strings accepted by the clock: #RRGGBB,
// #AARRGGBB and SVG color names.
package colors

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrInvalidColor is wrapped by every Parse failure.
var ErrInvalidColor = errors.New("invalid color")

// Parse converts s into a color. Hex forms require a leading '#'; the 8-digit
// form carries alpha first. Names are matched case-insensitively.
func Parse(s string) (color.NRGBA, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty string", ErrInvalidColor)
	}

	if strings.HasPrefix(v, "#") {
		return parseHex(s, v[1:])
	}

	c, ok := colornames.Map[strings.ToLower(v)]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%w: unknown color %q", ErrInvalidColor, s)
	}
	// colornames entries are all opaque, so RGBA and NRGBA agree
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// MustParse is Parse for pre-validated constants; it panics on failure.
func MustParse(s string) color.NRGBA {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(orig, digits string) (color.NRGBA, error) {
	if len(digits) != 6 && len(digits) != 8 {
		return color.NRGBA{}, fmt.Errorf("%w: %q must be #RRGGBB or #AARRGGBB", ErrInvalidColor, orig)
	}

	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q is not hexadecimal", ErrInvalidColor, orig)
	}

	c := color.NRGBA{
		R: uint8(n >> 16),
		G: uint8(n >> 8),
		B: uint8(n),
		A: 0xFF,
	}
	if len(digits) == 8 {
		c.A = uint8(n >> 24)
	}
	return c, nil
}

// Format renders c as #RRGGBB, or #AARRGGBB when it is not opaque
func Format(c color.NRGBA) string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}
