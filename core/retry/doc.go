// Package retry implements a bounded retry policy: a fixed number of attempts,
// a per-attempt timeout, an optional delay, and an acceptance predicate that
// lets callers reject well-formed but useless results (for example a
// translation identical to its input). Policies hold no network state, so the
// retry contract is tested in isolation.
package retry
