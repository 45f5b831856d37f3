package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ClockTheme keeps the light variant regardless of the system preference,
// since the face itself is always drawn in black.
type ClockTheme struct{}

// NewClockTheme creates the clock theme
func NewClockTheme() fyne.Theme {
	return &ClockTheme{}
}

// Color returns theme colors
func (t *ClockTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *ClockTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ClockTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ClockTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameInputRadius:
		return 3 // Reduced from default 5
	}

	return theme.DefaultTheme().Size(name)
}
