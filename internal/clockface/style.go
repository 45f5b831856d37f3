package clockface

import (
	"image/color"

	"github.com/reanimator/analog-clock/internal/model"
)

// BaseHandThickness is the hand stroke width before the thickness factor
const BaseHandThickness = 4

// DefaultHandStyleFactor is used when Options leave HandStyleFactor unset
const DefaultHandStyleFactor = 1

var (
	black = color.NRGBA{A: 0xFF}
)

// Style is the mutable appearance of a clock. It is owned by a Renderer and
// changed only through the Renderer's setters.
type Style struct {
	SecondHandColor color.NRGBA
	// ThicknessFactor multiplies BaseHandThickness. Set from a category it is
	// 1, 3 or 5; a declared hand style may carry any positive factor.
	ThicknessFactor int
}

// HandStrokeWidth returns the stroke width used for all three hands
func (s Style) HandStrokeWidth() float64 {
	return float64(BaseHandThickness * s.ThicknessFactor)
}

// Thickness reports the category for the current factor; see
// model.ThicknessFromFactor for how unknown factors are reported.
func (s Style) Thickness() model.Thickness {
	return model.ThicknessFromFactor(s.ThicknessFactor)
}
