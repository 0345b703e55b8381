package translation

import "sort"

var languageNames = map[string]string{
	"pt_BR": "Brazilian Portuguese",
	"pt_PT": "Portuguese from Portugal",
	"en_US": "American English",
	"en_GB": "British English",
	"es_ES": "Spanish (Spain)",
	"fr_FR": "French (France)",
	"de_DE": "German (Germany)",
}

// LanguageName returns the human readable name of a language tag. Unknown
// tags are returned as is.
func LanguageName(tag string) string {
	if name, ok := languageNames[tag]; ok {
		return name
	}
	return tag
}

// IsSupported reports whether the tag has a known name.
func IsSupported(tag string) bool {
	_, ok := languageNames[tag]
	return ok
}

// SupportedLanguages returns the known tags, sorted.
func SupportedLanguages() []string {
	tags := make([]string, 0, len(languageNames))
	for tag := range languageNames {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
