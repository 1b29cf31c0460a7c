package model

// Language selects the display language for localized fields. It affects
// formatting only, never data semantics.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// LocalizedString carries the English and Arabic renderings of a value.
type LocalizedString struct {
	EN string `json:"en"`
	AR string `json:"ar"`
}

// In returns the rendering for lang, falling back to English.
func (s LocalizedString) In(lang Language) string {
	if lang == LanguageArabic && s.AR != "" {
		return s.AR
	}
	return s.EN
}
