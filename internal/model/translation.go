package model

// DefaultTranslation is the translation preference used when none is saved
const DefaultTranslation = "rv1960"

// Translations lists the supported translation codes
var Translations = []string{"rv1960", "rv1995", "nvi", "dhh", "pdt", "kjv"}

// ValidTranslation reports whether code names a supported translation
func ValidTranslation(code string) bool {
	for _, t := range Translations {
		if code == t {
			return true
		}
	}
	return false
}
