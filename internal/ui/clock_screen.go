package ui

import (
	"errors"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/reanimator/analog-clock/internal/clockface"
	"github.com/reanimator/analog-clock/internal/config"
	"github.com/reanimator/analog-clock/internal/model"
	"github.com/reanimator/analog-clock/internal/platform"
)

// ClockScreen is the main window content: the clock with controls for the
// second-hand color and the hand thickness.
type ClockScreen struct {
	window       fyne.Window
	clock        *ClockWidget
	attrs        config.Attributes
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	timers       platform.Clock

	colorLabel     *widget.Label
	colorEntry     *widget.Entry
	colorBtn       *widget.Button
	thicknessLabel *widget.Label
	thicknessGroup *widget.RadioGroup

	toast      *widget.PopUp
	toastTimer platform.Timer
}

// NewClockScreen builds the screen into window. attrs are the declared clock
// attributes; choices saved in the app preferences take precedence over them.
func NewClockScreen(window fyne.Window, app fyne.App, attrs config.Attributes, clock platform.Clock) (*ClockScreen, error) {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	cw, err := NewClockWidget(attrs.WithSettings(settings).Options(), clock)
	if err != nil {
		return nil, err
	}

	s := &ClockScreen{
		window:       window,
		clock:        cw,
		attrs:        attrs,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		timers:       clock,
	}
	cw.OnSwipeThickness = s.selectThickness

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(s.Stop)

	s.setupUI()
	return s, nil
}

// Clock returns the clock widget
func (s *ClockScreen) Clock() *ClockWidget {
	return s.clock
}

// Stop hides any toast and ends the clock's redraw loop
func (s *ClockScreen) Stop() {
	s.hideToast()
	s.clock.Stop()
}

// setupUI creates and arranges all UI components
func (s *ClockScreen) setupUI() {
	s.createMenu()

	l := s.localization

	s.colorLabel = widget.NewLabel(l.GetText(KeySecondHandColor))
	s.colorEntry = s.mobile.CreateMobileEntry(l.GetText(KeyColorPlaceholder))
	s.colorEntry.OnSubmitted = func(string) {
		s.onChangeColor()
	}
	s.colorBtn = s.mobile.CreateMobileButton(l.GetText(KeyChangeColor), s.onChangeColor)

	s.thicknessLabel = widget.NewLabel(l.GetText(KeyHandsThickness))
	s.thicknessGroup = widget.NewRadioGroup(l.ThicknessLabels(), nil)
	s.thicknessGroup.Horizontal = true
	s.thicknessGroup.Required = true
	s.thicknessGroup.SetSelected(l.ThicknessLabel(s.clock.HandsThickness()))
	// attach after the initial selection so startup does not persist anything
	s.thicknessGroup.OnChanged = s.onThicknessSelected

	controls := container.NewVBox(
		s.colorLabel,
		container.NewBorder(nil, nil, nil, s.colorBtn, s.colorEntry),
		s.thicknessLabel,
		s.thicknessGroup,
	)

	content := s.mobile.CreateOrientationAwareLayout(s.clock, container.NewPadded(controls))
	s.window.SetContent(content)

	log.Printf("Clock screen ready (thickness=%s, second hand=%s)",
		s.clock.HandsThickness(), s.attrs.WithSettings(s.settings).SecondHandColor)
}

// createMenu creates the application menu
func (s *ClockScreen) createMenu() {
	l := s.localization

	settingsItem := fyne.NewMenuItem(l.GetText(KeySettings), s.onShowSettings)
	resetItem := fyne.NewMenuItem(l.GetText(KeyResetClock), s.onResetClock)

	// Language submenu
	languageMenu := fyne.NewMenu(l.GetText(KeyLanguage))
	for code, name := range l.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			s.onLanguageChange(langCode)
		})
		if l.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	s.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(l.GetText(KeyFile), settingsItem, resetItem),
		languageMenu,
	))
}

// onChangeColor applies the color typed in the entry
func (s *ClockScreen) onChangeColor() {
	value := strings.TrimSpace(s.colorEntry.Text)

	if err := s.clock.SetSecondHandColor(value); err != nil {
		var cfgErr *clockface.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Printf("Rejected second hand color %q: %v", cfgErr.Value, cfgErr.Err)
		}
		s.showToast(s.localization.GetText(KeyNotThisOne))
		return
	}

	if err := s.settings.SetSecondHandColor(value); err != nil {
		log.Printf("Failed to save second hand color: %v", err)
	}
}

// onThicknessSelected applies the thickness picked in the radio group
func (s *ClockScreen) onThicknessSelected(label string) {
	t, ok := s.localization.ThicknessForLabel(label)
	if !ok {
		return
	}

	if err := s.clock.SetHandsThickness(t); err != nil {
		log.Printf("Failed to set hands thickness: %v", err)
		s.showToast(err.Error())
		return
	}
	s.settings.SetHandsThickness(t)
}

// selectThickness moves the radio group selection, which applies t
func (s *ClockScreen) selectThickness(t model.Thickness) {
	s.thicknessGroup.SetSelected(s.localization.ThicknessLabel(t))
}

// applySettings pushes the saved settings, or the declared attributes where
// nothing is saved, into the clock.
func (s *ClockScreen) applySettings() {
	attrs := s.attrs.WithSettings(s.settings)

	if err := s.clock.SetSecondHandColor(attrs.SecondHandColor); err != nil {
		log.Printf("Failed to apply second hand color: %v", err)
	}
	factor := attrs.HandsStyle
	if factor <= 0 {
		factor = clockface.DefaultHandStyleFactor
	}
	if err := s.clock.SetHandsThickness(model.ThicknessFromFactor(factor)); err != nil {
		log.Printf("Failed to apply hands thickness: %v", err)
	}
	s.showThickness()
}

// showThickness moves the radio group to the clock's thickness without
// going through OnChanged, so nothing is persisted.
func (s *ClockScreen) showThickness() {
	s.thicknessGroup.Selected = s.localization.ThicknessLabel(s.clock.HandsThickness())
	s.thicknessGroup.Refresh()
}

// onShowSettings shows the settings dialog
func (s *ClockScreen) onShowSettings() {
	ShowSettingsDialog(s.window, s.settings, s.localization, s.onSettingsSaved)
}

func (s *ClockScreen) onSettingsSaved() {
	s.localization.SetLanguage(s.settings.GetLanguage())
	s.applySettings()
	s.refreshUITexts()
	s.createMenu()
	s.showToast(s.localization.GetText(KeySettingsSaved))
}

func (s *ClockScreen) onResetClock() {
	s.settings.Reset()
	s.applySettings()
	s.showToast(s.localization.GetText(KeyClockReset))
}

// onLanguageChange handles language change
func (s *ClockScreen) onLanguageChange(langCode string) {
	s.localization.SetLanguage(langCode)
	s.settings.SetLanguage(langCode)

	s.refreshUITexts()

	// Recreate menu to update checkmarks
	s.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (s *ClockScreen) refreshUITexts() {
	l := s.localization

	s.window.SetTitle(l.GetText(KeyAppTitle))
	s.colorLabel.SetText(l.GetText(KeySecondHandColor))
	s.colorEntry.SetPlaceHolder(l.GetText(KeyColorPlaceholder))
	s.colorBtn.SetText(l.GetText(KeyChangeColor))
	s.thicknessLabel.SetText(l.GetText(KeyHandsThickness))

	s.thicknessGroup.Options = l.ThicknessLabels()
	s.showThickness()
}

// showToast shows a short message near the bottom of the window
func (s *ClockScreen) showToast(message string) {
	s.hideToast()

	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter

	popup := widget.NewPopUp(label, s.window.Canvas())
	canvasSize := s.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(toastSize)
	popup.ShowAtPosition(fyne.NewPos(
		(canvasSize.Width-toastSize.Width)/2,
		canvasSize.Height-toastSize.Height-ToastMargin,
	))
	s.toast = popup

	s.toastTimer = s.timers.AfterFunc(ToastAutoHide, func() {
		fyne.Do(func() {
			if s.toast == popup {
				s.hideToast()
			}
		})
	})
}

func (s *ClockScreen) hideToast() {
	if s.toastTimer != nil {
		s.toastTimer.Stop()
		s.toastTimer = nil
	}
	if s.toast != nil {
		s.toast.Hide()
		s.toast = nil
	}
}
