// Package translation translates post fields through an LLM chat completion
// provider.
//
// # Contexts
//
// Every call names a Context (title, body, excerpt, category, tag, media or
// default) which picks the instruction template. The instruction is sent as
// the system message and repeated ahead of the text in the user message.
// Title, body and excerpt splice in the style prompt from the settings; body
// additionally asks the model to keep HTML markup intact.
//
// # Failure model
//
// Translate never returns an error. It returns the input unchanged when:
//   - the text is empty or source and target languages are equal
//   - no API key is configured in the current settings snapshot
//   - every attempt failed, came back empty, or echoed the input
//   - the request context ended
//
// Attempts are bounded by a retry.Policy: three tries, 30 seconds each, no
// backoff. Echoed results consume attempts like transport errors but are
// logged at a lower level.
package translation
