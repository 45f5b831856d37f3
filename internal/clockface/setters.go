package clockface

import (
	"image/color"

	"github.com/reanimator/analog-clock/internal/colors"
	"github.com/reanimator/analog-clock/internal/model"
)

// SecondHandColor returns the color of the second hand
func (r *Renderer) SecondHandColor() color.NRGBA {
	return r.style.SecondHandColor
}

// SetSecondHandColor parses value and makes it the second-hand color. On
// failure it returns a *ConfigurationError and the style is left unchanged.
func (r *Renderer) SetSecondHandColor(value string) error {
	c, err := colors.Parse(value)
	if err != nil {
		return &ConfigurationError{Op: "clockface.SetSecondHandColor", Value: value, Err: err}
	}

	r.style.SecondHandColor = c
	r.changed()
	return nil
}

// HandsThickness returns the current thickness category
func (r *Renderer) HandsThickness() model.Thickness {
	return r.style.Thickness()
}

// SetHandsThickness switches the hands to category t. Values outside the
// declared categories return an *InvalidArgumentError.
func (r *Renderer) SetHandsThickness(t model.Thickness) error {
	if !t.Valid() {
		return &InvalidArgumentError{Op: "clockface.SetHandsThickness", Value: t.String(), Err: model.ErrUnknownThickness}
	}

	r.style.ThicknessFactor = t.Factor()
	r.changed()
	return nil
}

// SetHandsThicknessName is SetHandsThickness for a category name such as
// "thin", "normal" or "thick".
func (r *Renderer) SetHandsThicknessName(name string) error {
	t, err := model.ParseThickness(name)
	if err != nil {
		return &InvalidArgumentError{Op: "clockface.SetHandsThickness", Value: name, Err: err}
	}
	return r.SetHandsThickness(t)
}

func (r *Renderer) changed() {
	if r.scheduler == nil {
		return
	}
	r.scheduler.RequestImmediateRedraw()
	r.scheduler.RequestLayout()
}
