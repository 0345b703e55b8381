package translation

import "fmt"

// Context selects the instruction template of a translation.
type Context string

// Translation contexts.
const (
	ContextTitle    Context = "title"
	ContextBody     Context = "body"
	ContextExcerpt  Context = "excerpt"
	ContextCategory Context = "category"
	ContextTag      Context = "tag"
	ContextMedia    Context = "media"
	ContextDefault  Context = "default"
)

// Instruction builds the system message for a translation from src to dst.
// Language arguments are display names. Only title, body and excerpt use the
// configured system prompt; unknown contexts get the default template.
func Instruction(c Context, src, dst, systemPrompt string) string {
	intro := fmt.Sprintf("You are fluent in %s and %s", src, dst)

	switch c {
	case ContextTitle:
		return fmt.Sprintf("%s, specializing in WordPress blog translations. Translate the title from %s to %s using the %s. Ensure full conversion.",
			intro, src, dst, systemPrompt)
	case ContextBody:
		return fmt.Sprintf("%s, specializing in WordPress blog translations. Translate the content from %s to %s using the %s. IMPORTANT: The content may contain HTML markup; preserve all markup and translate only the visible text.",
			intro, src, dst, systemPrompt)
	case ContextExcerpt:
		return fmt.Sprintf("%s, specializing in WordPress blog translations. Translate the excerpt from %s to %s using the %s.",
			intro, src, dst, systemPrompt)
	case ContextCategory:
		return fmt.Sprintf("%s, specializing in WordPress blog translations. Translate the following category title from %s to %s:", intro, src, dst)
	case ContextTag:
		return fmt.Sprintf("%s, specializing in WordPress blog translations. Translate the following tag from %s to %s:", intro, src, dst)
	case ContextMedia:
		return fmt.Sprintf("%s, specializing in WordPress blog translations. Translate the media metadata from %s to %s.", intro, src, dst)
	default:
		return fmt.Sprintf("%s, specializing in WordPress blog translations. Translate the text from %s to %s, preserving tone and style.", intro, src, dst)
	}
}
