package ui

import (
	"sort"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/reanimator/analog-clock/internal/colors"
	"github.com/reanimator/analog-clock/internal/config"
)

// SettingsDialog edits the persisted clock settings
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	colorEntry      *widget.Entry
	thicknessSelect *widget.Select
	languageSelect  *widget.Select
	resetCheck      *widget.Check

	languageCodes map[string]string // display name -> code
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after the settings have been written.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window, onSaved)
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	sd.colorEntry = widget.NewEntry()
	sd.colorEntry.SetPlaceHolder(l.GetText(KeyColorPlaceholder))
	sd.colorEntry.Validator = func(s string) error {
		if strings.TrimSpace(s) == "" {
			return nil
		}
		_, err := colors.Parse(s)
		return err
	}

	sd.thicknessSelect = widget.NewSelect(l.ThicknessLabels(), nil)

	// Language selection, sorted by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.resetCheck = widget.NewCheck(l.GetText(KeyResetClock), nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeySecondHandColor)+":"),
		sd.colorEntry,

		widget.NewLabel(l.GetText(KeyHandsThickness)+":"),
		sd.thicknessSelect,

		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		sd.resetCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.colorEntry.SetText(sd.settings.GetSecondHandColor())

	if t, ok := sd.settings.GetHandsThickness(); ok {
		sd.thicknessSelect.SetSelected(sd.localization.ThicknessLabel(t))
	} else {
		sd.thicknessSelect.ClearSelected()
	}

	lang := sd.settings.GetLanguage()
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[lang])
	sd.resetCheck.SetChecked(false)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if err := sd.save(); err != nil {
		dialog.ShowError(err, sd.window)
		return
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save writes the dialog state. Nothing is written if the color is invalid.
func (sd *SettingsDialog) save() error {
	colorText := strings.TrimSpace(sd.colorEntry.Text)
	if colorText != "" {
		if _, err := colors.Parse(colorText); err != nil {
			return err
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.resetCheck.Checked {
		sd.settings.Reset()
		return nil
	}

	if colorText != "" {
		if err := sd.settings.SetSecondHandColor(colorText); err != nil {
			return err
		}
	}
	if t, ok := sd.localization.ThicknessForLabel(sd.thicknessSelect.Selected); ok {
		sd.settings.SetHandsThickness(t)
	}
	return nil
}
