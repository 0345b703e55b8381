// Package integrity provides health checks for a running receiver.
//
// # Checks Provided
//
//   - Schema: every registered store verifies that its tables carry the expected columns.
//   - Storage: the media bucket exists and is reachable.
//   - Settings: a receiver token is configured, the target language is supported
//     and (informational) an OpenAI API key is present.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks (supports ?fix=true to create a missing bucket).
//
// The endpoint requires the receiver token and answers 503 when a required
// check fails.
package integrity
