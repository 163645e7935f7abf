package models

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// IsDark reports whether t is the dark scheme.
func (t Theme) IsDark() bool {
	return t == ThemeDark
}

// ThemeFromDarkMode converts the backend's darkMode flag to a Theme.
func ThemeFromDarkMode(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// Supported UI languages.
const (
	LanguageEnglish = "en"
	LanguageFrench  = "fr"
)

// SupportedLanguages lists the languages in selection order.
var SupportedLanguages = []string{LanguageEnglish, LanguageFrench}

// IsSupportedLanguage reports whether lang has a translation catalog.
func IsSupportedLanguage(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
