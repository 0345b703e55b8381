// Package models defines the GORM models of the content store: posts, taxonomy
// terms and their links, media attachments, and users.
package models
