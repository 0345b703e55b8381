// Package receptor receives posts pushed by a remote site and reconciles them
// into the local content store.
//
// # Endpoints
//
// Routes are mounted under a configurable prefix (default
// /wp-json/post-receptor/v1):
//
//	POST /receive        create or update a post            (token)
//	POST /update-status  change the status of a post        (token)
//	POST /delete         permanently delete a post          (token)
//	GET  /check-token    validate the caller's token        (token)
//	GET  /status         liveness and token configuration   (public)
//
// # Pipeline
//
// A receive runs under a per external id lock and goes through:
//
//  1. Translation of title, content, excerpt, SEO description and focus
//     keyword, concurrently, when the origin language differs from the
//     configured target language.
//  2. Author resolution, category and tag resolution, and media metadata
//     translation, concurrently.
//  3. Lookup by external id, then an in-place update or a create stamped
//     with the external id. Failures here fail the request with 500.
//  4. Term links and optional metadata, each written only when present.
//  5. Featured image reconciliation: skipped when the source url is
//     unchanged, otherwise the previous image is deleted and the new one
//     attached.
//
// Steps other than 3 log and continue on failure.
//
// # Idempotence
//
// The external id is the idempotency key. Replays converge on one local
// post, update-status and delete on unknown ids succeed without changes, and
// a second delete of the same id is a no-op.
package receptor
