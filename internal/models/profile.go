package models

import "errors"

// DefaultCarName is reported until the user names the car.
const DefaultCarName = "My Car"

var (
	ErrInvalidTheme    = errors.New("theme must be light, dark or system")
	ErrInvalidLanguage = errors.New("language must be en, ar or system")
)

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

func ParseTheme(s string) (Theme, error) {
	t := Theme(s)
	if !t.Valid() {
		return "", ErrInvalidTheme
	}
	return t, nil
}

// Language is the interface language preference.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
	LanguageSystem  Language = "system"
)

func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageArabic, LanguageSystem:
		return true
	}
	return false
}

func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", ErrInvalidLanguage
	}
	return l, nil
}

// Profile is the singleton car profile and settings record.
type Profile struct {
	CarName  string
	Theme    Theme
	Language Language
	FirstRun bool
}

// DefaultProfile is the first-run state.
func DefaultProfile() Profile {
	return Profile{
		CarName:  DefaultCarName,
		Theme:    ThemeSystem,
		Language: LanguageSystem,
		FirstRun: true,
	}
}
