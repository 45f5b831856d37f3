package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownThickness is returned when a thickness name is not one of the
// recognized categories.
var ErrUnknownThickness = errors.New("unknown hands thickness")

// Thickness is the hand-thickness category of the clock face.
type Thickness int

const (
	ThicknessThin Thickness = iota
	ThicknessNormal
	ThicknessThick
)

// Stroke-width multipliers for each category
const (
	ThinFactor   = 1
	NormalFactor = 3
	ThickFactor  = 5
)

// String returns the category name used in settings and the UI
func (t Thickness) String() string {
	switch t {
	case ThicknessThin:
		return "thin"
	case ThicknessNormal:
		return "normal"
	case ThicknessThick:
		return "thick"
	default:
		return fmt.Sprintf("Thickness(%d)", int(t))
	}
}

// Valid reports whether t is one of the declared categories
func (t Thickness) Valid() bool {
	return t >= ThicknessThin && t <= ThicknessThick
}

// Factor returns the stroke-width multiplier for the category.
// Invalid values return 0.
func (t Thickness) Factor() int {
	switch t {
	case ThicknessThin:
		return ThinFactor
	case ThicknessNormal:
		return NormalFactor
	case ThicknessThick:
		return ThickFactor
	default:
		return 0
	}
}

// Next returns the following category, wrapping from thick back to thin
func (t Thickness) Next() Thickness {
	return Thickness((int(t) + 1) % len(thicknesses))
}

// Prev returns the preceding category, wrapping from thin to thick
func (t Thickness) Prev() Thickness {
	return Thickness((int(t) + len(thicknesses) - 1) % len(thicknesses))
}

var thicknesses = []Thickness{ThicknessThin, ThicknessNormal, ThicknessThick}

// Thicknesses returns all categories in display order
func Thicknesses() []Thickness {
	out := make([]Thickness, len(thicknesses))
	copy(out, thicknesses)
	return out
}

// ParseThickness maps a category name to its Thickness.
func ParseThickness(name string) (Thickness, error) {
	switch strings.TrimSpace(name) {
	case "thin":
		return ThicknessThin, nil
	case "normal":
		return ThicknessNormal, nil
	case "thick":
		return ThicknessThick, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownThickness, name)
}

// ThicknessFromFactor maps a stroke multiplier back to a category.
//
// Any factor other than 1 or 3 reports ThicknessThick, including factors that
// never came from a category (a declared handsStyle of 2, for example). This
// mirrors how the widget has always reported unknown factors; callers should
// not rely on it for validation.
func ThicknessFromFactor(factor int) Thickness {
	switch factor {
	case ThinFactor:
		return ThicknessThin
	case NormalFactor:
		return ThicknessNormal
	default:
		return ThicknessThick
	}
}
