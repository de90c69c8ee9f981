package ddragon

// DefaultLanguage is the catalog language every failed request falls back to.
const DefaultLanguage = "en_US"

// languageMap converts i18n locale codes to Data Dragon language codes.
var languageMap = map[string]string{
	"pt-BR": "pt_BR",
	"en-US": "en_US",
	"es-ES": "es_ES",
	"fr-FR": "fr_FR",
	"it-IT": "it_IT",
	"zh-CN": "zh_CN",
}

// Language converts a locale code to its Data Dragon code, defaulting to
// English. Already converted codes pass through unchanged.
func Language(locale string) string {
	if code, ok := languageMap[locale]; ok {
		return code
	}
	for _, code := range languageMap {
		if code == locale {
			return locale
		}
	}
	return DefaultLanguage
}

// languageCandidates returns the ordered list of languages to try for a
// catalog request: the requested language, then the default. Exactly one
// fallback hop.
func languageCandidates(locale string) []string {
	language := Language(locale)
	if language == DefaultLanguage {
		return []string{DefaultLanguage}
	}
	return []string{language, DefaultLanguage}
}
