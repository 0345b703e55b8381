// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - Auth: validates "Authorization: Bearer <token>" against the token held
//     in the settings store, reading it per request so rotation is immediate.
//   - RayID: assigns every request a unique id (or reuses the sender's),
//     exposed in the X-Ray-ID response header and in every log entry.
//   - CORS: allows any origin and answers preflight requests with an empty 200.
//
// CORS and RayID are registered globally; Auth is attached per route group so
// that the public status endpoint stays reachable.
package middleware
