package models

import "time"

// Taxonomy names.
const (
	TaxonomyCategory = "category"
	TaxonomyTag      = "post_tag"
)

// Default post status for newly created posts without an explicit status.
const StatusDraft = "draft"

// Post is a locally stored blog post. SourcePostID is the sender's post id
// and the idempotency key of every receive.
type Post struct {
	ID              uint   `gorm:"column:id;primaryKey"`
	SourcePostID    int64  `gorm:"column:source_post_id;uniqueIndex"`
	Title           string `gorm:"column:title"`
	Content         string `gorm:"column:content"`
	Excerpt         string `gorm:"column:excerpt"`
	Slug            string `gorm:"column:slug;size:200;index"`
	Status          string `gorm:"column:status;size:20"`
	AuthorID        uint   `gorm:"column:author_id"`
	FeaturedMediaID *uint  `gorm:"column:featured_media_id"`
	MetaDescription string `gorm:"column:seo_metadesc"`
	FocusKeyword    string `gorm:"column:focus_keyword"`
	LayoutData      string `gorm:"column:layout_data"`
	MediaSnapshot   string `gorm:"column:media_snapshot"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the table name.
func (Post) TableName() string {
	return "receptor_posts"
}

// Term is a category or tag, unique per (taxonomy, slug).
type Term struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Taxonomy string `gorm:"column:taxonomy;size:32;uniqueIndex:idx_taxonomy_slug"`
	Slug     string `gorm:"column:slug;size:200;uniqueIndex:idx_taxonomy_slug"`
	Name     string `gorm:"column:name"`
}

// TableName overrides the table name.
func (Term) TableName() string {
	return "receptor_terms"
}

// PostTerm links a post to a term.
type PostTerm struct {
	PostID   uint   `gorm:"column:post_id;primaryKey"`
	TermID   uint   `gorm:"column:term_id;primaryKey"`
	Taxonomy string `gorm:"column:taxonomy;size:32;index"`
}

// TableName overrides the table name.
func (PostTerm) TableName() string {
	return "receptor_post_terms"
}

// Media is an uploaded attachment. SourceURL records where the bytes were
// fetched from so unchanged featured images are not downloaded again.
type Media struct {
	ID          uint   `gorm:"column:id;primaryKey"`
	PostID      uint   `gorm:"column:post_id;index"`
	ObjectKey   string `gorm:"column:object_key"`
	FileName    string `gorm:"column:file_name"`
	MimeType    string `gorm:"column:mime_type;size:100"`
	Size        int64  `gorm:"column:size"`
	Title       string `gorm:"column:title"`
	Caption     string `gorm:"column:caption"`
	Description string `gorm:"column:description"`
	Alt         string `gorm:"column:alt"`
	SourceURL   string `gorm:"column:source_image_url"`
	CreatedAt   time.Time
}

// TableName overrides the table name.
func (Media) TableName() string {
	return "receptor_media"
}

// User is a local author account.
type User struct {
	ID           uint   `gorm:"column:id;primaryKey"`
	Login        string `gorm:"column:login;size:60;uniqueIndex"`
	Email        string `gorm:"column:email;size:100"`
	DisplayName  string `gorm:"column:display_name"`
	FirstName    string `gorm:"column:first_name"`
	LastName     string `gorm:"column:last_name"`
	Nickname     string `gorm:"column:nickname"`
	URL          string `gorm:"column:url"`
	Description  string `gorm:"column:description"`
	Role         string `gorm:"column:role;size:20"`
	PasswordHash string `gorm:"column:password_hash"`
	CreatedAt    time.Time
}

// TableName overrides the table name.
func (User) TableName() string {
	return "receptor_users"
}

// All lists every model for migrations.
func All() []any {
	return []any{&Post{}, &Term{}, &PostTerm{}, &Media{}, &User{}}
}
