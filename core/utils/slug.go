package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose into a base letter plus combining marks.
var transliterations = map[rune]string{
	'ß': "ss",
	'æ': "ae",
	'œ': "oe",
	'ø': "o",
	'đ': "d",
	'ð': "d",
	'ł': "l",
	'þ': "th",
}

// Slugify derives a URL-safe slug from an arbitrary title.
//
// Accents are transliterated, the text is lowercased, whitespace and separators
// become dashes, anything outside [a-z0-9-] is dropped, dash runs collapse, and
// leading characters are stripped until the slug starts with a letter. The
// result is either empty or matches ^[a-z][a-z0-9-]*$.
func Slugify(title string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(title),
	)
	if err != nil {
		folded = strings.ToLower(title)
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '.', r == '/', r == '–', r == '—':
			b.WriteByte('-')
		default:
			if t, ok := transliterations[r]; ok {
				b.WriteString(t)
			}
		}
	}

	slug := b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}
	slug = strings.Trim(slug, "-")

	return strings.TrimLeftFunc(slug, func(r rune) bool {
		return r < 'a' || r > 'z'
	})
}
