// Package content is the content store of the receiver: posts, taxonomy terms,
// media attachments and users, persisted with GORM on MySQL, PostgreSQL or
// SQLite.
//
// # Identity
//
// Every post carries source_post_id, the sender's post id, under a unique
// index. FindBySourceID is the lookup the receive, update-status and delete
// flows share; a missing post is a normal outcome, not an error.
//
// # Deletion
//
// Posts have no soft delete. A "trash" status is an ordinary status value, and
// PurgePost removes the row together with its term links.
//
// # Schema
//
// Migrate runs AutoMigrate over all models. When migrations are disabled,
// VerifySchema compares the live columns against the models and fails fast on
// drift.
package content
