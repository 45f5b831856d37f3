package config

import (
	"fyne.io/fyne/v2"

	"github.com/reanimator/analog-clock/internal/colors"
	"github.com/reanimator/analog-clock/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyHandsThickness  = "hands_thickness"
	KeySecondHandColor = "second_hand_color"
	KeyLanguage        = "app_language"
)

// Default values
const (
	DefaultLanguage = "system"
)

// Settings persists the user's clock choices between sessions
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetHandsThickness returns the saved thickness, and false if none was saved
// or the stored value is no longer recognized.
func (s *Settings) GetHandsThickness() (model.Thickness, bool) {
	name := s.app.Preferences().String(KeyHandsThickness)
	if name == "" {
		return 0, false
	}
	t, err := model.ParseThickness(name)
	if err != nil {
		return 0, false
	}
	return t, true
}

// SetHandsThickness saves the thickness category
func (s *Settings) SetHandsThickness(t model.Thickness) {
	if !t.Valid() {
		return
	}
	s.app.Preferences().SetString(KeyHandsThickness, t.String())
}

// GetSecondHandColor returns the saved second-hand color, or "" if none
func (s *Settings) GetSecondHandColor() string {
	return s.app.Preferences().String(KeySecondHandColor)
}

// SetSecondHandColor validates and saves a second-hand color in #RRGGBB form
func (s *Settings) SetSecondHandColor(value string) error {
	c, err := colors.Parse(value)
	if err != nil {
		return err
	}
	s.app.Preferences().SetString(KeySecondHandColor, colors.Format(c))
	return nil
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Reset forgets the saved clock choices so the declared attributes apply again
func (s *Settings) Reset() {
	s.app.Preferences().RemoveValue(KeyHandsThickness)
	s.app.Preferences().RemoveValue(KeySecondHandColor)
}
