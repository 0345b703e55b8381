package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugPattern = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Punctuation and digits", "Hello, World! 123", "hello-world-123"},
		{"Accents", "Olá Mundo", "ola-mundo"},
		{"Portuguese", "Programação e Tecnologia", "programacao-e-tecnologia"},
		{"German", "Straße über Köln", "strasse-uber-koln"},
		{"Leading digits", "2024 Recap", "recap"},
		{"Leading symbols", "--!!Top 10 Tips", "top-10-tips"},
		{"Collapses separators", "a  -  b ... c", "a-b-c"},
		{"Emoji", "Café ☕ Time 🚀", "cafe-time"},
		{"Apostrophe", "Don't Stop", "dont-stop"},
		{"Underscore dropped", "snake_case", "snakecase"},
		{"Only digits", "12345", ""},
		{"Empty", "", ""},
		{"Only symbols", "!@#$%", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slugify(tt.input)
			assert.Equal(t, tt.want, got)
			if got != "" {
				assert.Regexp(t, slugPattern, got)
			}
		})
	}
}

func TestSlugify_Deterministic(t *testing.T) {
	inputs := []string{"Olá Mundo", "Hello, World! 123", "  Ünïcödé  ", "1-2-3 go"}
	for _, in := range inputs {
		first := Slugify(in)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Slugify(in))
		}
		assert.Equal(t, first, Slugify(first), "slug of a slug is stable")
	}
}
