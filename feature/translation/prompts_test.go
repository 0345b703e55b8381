package translation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstruction(t *testing.T) {
	const prompt = "SYSTEM-PROMPT"

	tests := []struct {
		context    Context
		contains   string
		usesPrompt bool
	}{
		{ContextTitle, "Translate the title from A to B", true},
		{ContextBody, "preserve all markup and translate only the visible text", true},
		{ContextExcerpt, "Translate the excerpt from A to B", true},
		{ContextCategory, "Translate the following category title from A to B:", false},
		{ContextTag, "Translate the following tag from A to B:", false},
		{ContextMedia, "Translate the media metadata from A to B.", false},
		{ContextDefault, "preserving tone and style", false},
		{"unknown", "preserving tone and style", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.context), func(t *testing.T) {
			got := Instruction(tt.context, "A", "B", prompt)
			assert.True(t, strings.HasPrefix(got, "You are fluent in A and B, specializing in WordPress blog translations. "))
			assert.Contains(t, got, tt.contains)
			assert.Equal(t, tt.usesPrompt, strings.Contains(got, prompt))
		})
	}
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "Brazilian Portuguese", LanguageName("pt_BR"))
	assert.Equal(t, "German (Germany)", LanguageName("de_DE"))
	assert.Equal(t, "it_IT", LanguageName("it_IT"))

	assert.True(t, IsSupported("en_GB"))
	assert.False(t, IsSupported("it_IT"))
	assert.Equal(t, []string{"de_DE", "en_GB", "en_US", "es_ES", "fr_FR", "pt_BR", "pt_PT"}, SupportedLanguages())
}
