// Package payload decodes and validates the request bodies of the receiving
// endpoints. Loose shapes sent by the sender (numeric string ids, terms as
// bare strings) are normalized here so the rest of the pipeline sees one
// strict type per entity. Every rejection wraps ErrInvalidPayload.
package payload
