// Package reconcile provides the concurrency primitives of the reconciliation
// pipeline.
//
// # Per-key serialization
//
// Payloads for the same external post id must not be reconciled concurrently.
// Locker abstracts that: KeyedMutex serializes inside one process, and
// RedisLocker extends it to every instance sharing a Redis server through
// SET NX leases.
//
// # Get-or-create
//
// Group wraps singleflight so that concurrent lookups of the same taxonomy
// slug share a single check-then-create execution.
//
// # Usage
//
//	unlock, err := locker.Lock(ctx, "post:42")
//	if err != nil {
//	    return err
//	}
//	defer unlock()
package reconcile
