// Package media handles the media part of a payload.
//
// Process translates the textual metadata of the featured image and of every
// attachment, keeping the structure of the input. AttachFeatured downloads the
// featured image, uploads it to the object store under
// <prefix>/<year>/<month>/<id>-<name>, registers an attachment row stamped with
// the source url, and makes it the post's featured image. DeleteAttachment
// removes both the object and the row.
//
// Download and attach failures are reported through ErrFetch and ErrAttach so
// callers can keep the post unchanged instead of failing it.
package media
