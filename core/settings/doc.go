// Package settings holds the process-wide, runtime-editable options of the
// receiver: translation API key, system prompt, target language, the bearer
// token senders authenticate with, and the sender address.
//
// Options live in the receptor_options table. Callers depend on the Source
// interface and take one Snapshot per request; the snapshot is never mutated,
// so a request sees consistent settings even while an operator rotates the
// token through the CLI.
//
// # Usage
//
//	store := settings.NewStore(db)
//	_ = store.Bootstrap(ctx, cfg.Settings)
//	snap, err := store.Snapshot(ctx)
//	token, err := store.RegenerateToken(ctx)
package settings
