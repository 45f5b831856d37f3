package ui

import "github.com/reanimator/analog-clock/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
	KeySecondHandColor  = "second_hand_color"
	KeyColorPlaceholder = "color_placeholder"
	KeyChangeColor      = "change_color"
	KeyNotThisOne       = "not_this_one"
	KeyHandsThickness   = "hands_thickness"
	KeyThin             = "thin"
	KeyNormal           = "normal"
	KeyThick            = "thick"
	KeyResetClock       = "reset_clock"
	KeyClockReset       = "clock_reset"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Analog Clock",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved!",
		KeySecondHandColor:  "Second hand color",
		KeyColorPlaceholder: "#FF0000 or red",
		KeyChangeColor:      "Change color",
		KeyNotThisOne:       "Not this one",
		KeyHandsThickness:   "Hands thickness",
		KeyThin:             "Thin",
		KeyNormal:           "Normal",
		KeyThick:            "Thick",
		KeyResetClock:       "Reset clock",
		KeyClockReset:       "Clock reset to defaults",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Аналоговые часы",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки сохранены!",
		KeySecondHandColor:  "Цвет секундной стрелки",
		KeyColorPlaceholder: "#FF0000 или red",
		KeyChangeColor:      "Изменить цвет",
		KeyNotThisOne:       "Не этот",
		KeyHandsThickness:   "Толщина стрелок",
		KeyThin:             "Тонкие",
		KeyNormal:           "Обычные",
		KeyThick:            "Толстые",
		KeyResetClock:       "Сбросить часы",
		KeyClockReset:       "Настройки часов сброшены",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Relógio Analógico",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas!",
		KeySecondHandColor:  "Cor do ponteiro dos segundos",
		KeyColorPlaceholder: "#FF0000 ou red",
		KeyChangeColor:      "Mudar cor",
		KeyNotThisOne:       "Esta não",
		KeyHandsThickness:   "Espessura dos ponteiros",
		KeyThin:             "Finos",
		KeyNormal:           "Normais",
		KeyThick:            "Grossos",
		KeyResetClock:       "Redefinir relógio",
		KeyClockReset:       "Relógio redefinido",
	}
}

// ThicknessLabel returns the localized label of a thickness category
func (l *Localization) ThicknessLabel(t model.Thickness) string {
	switch t {
	case model.ThicknessThin:
		return l.GetText(KeyThin)
	case model.ThicknessNormal:
		return l.GetText(KeyNormal)
	case model.ThicknessThick:
		return l.GetText(KeyThick)
	}
	return t.String()
}

// ThicknessLabels returns the localized labels in display order
func (l *Localization) ThicknessLabels() []string {
	labels := make([]string, 0, len(model.Thicknesses()))
	for _, t := range model.Thicknesses() {
		labels = append(labels, l.ThicknessLabel(t))
	}
	return labels
}

// ThicknessForLabel maps a localized label back to its thickness
func (l *Localization) ThicknessForLabel(label string) (model.Thickness, bool) {
	for _, t := range model.Thicknesses() {
		if l.ThicknessLabel(t) == label {
			return t, true
		}
	}
	return 0, false
}
