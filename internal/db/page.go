package db

import "time"

// Content modes accepted for a page. Markdown content is converted on read;
// html content is served as stored.
const (
	ModeMarkdown = "markdown"
	ModeHTML     = "html"
)

// Page represents a standalone published document addressed by its slug.
// The slug is immutable once created; renaming a page is delete + recreate,
// which is why rows are hard-deleted (a soft-deleted row would keep the slug
// locked in the unique index).
type Page struct {
	ID        uint   `gorm:"primarykey"`
	Slug      string `gorm:"uniqueIndex;not null"`
	Title     string `gorm:"not null"`
	Content   string `gorm:"type:text;not null"`
	Mode      string `gorm:"not null;default:markdown"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
