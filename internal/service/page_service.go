package service

import (
	"bytes"
	"errors"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dabipages/internal/db"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrSlugTaken      = errors.New("slug already exists")
	ErrSlugReserved   = errors.New("slug conflicts with a static page")
	ErrInvalidSlug    = errors.New("slug must be 1-80 characters of [a-z0-9-]")
	ErrInvalidMode    = errors.New("mode must be markdown or html")
	ErrTitleMissing   = errors.New("title is required")
	ErrContentMissing = errors.New("content is required")
)

// slugPattern keeps slugs URL-safe and usable as a public path segment.
var slugPattern = regexp.MustCompile(`^[a-z0-9-]{1,80}$`)

var (
	summaryEngine = goldmark.New(goldmark.WithExtensions(extension.GFM))
	summaryStrip  = bluemonday.StrictPolicy()
)

// PageService provides slug-keyed CRUD over published pages.
type PageService struct {
	db        *gorm.DB
	staticDir string
}

// NewPageService returns a new PageService instance. staticDir is the root of
// the static asset collaborator; creates refuse slugs that would shadow a
// file living there.
func NewPageService(gdb *gorm.DB, staticDir string) *PageService {
	return &PageService{db: gdb, staticDir: staticDir}
}

// CreatePageInput carries the fields of a page to be created. Content is the
// raw source for the given mode.
type CreatePageInput struct {
	Slug    string
	Title   string
	Content string
	Mode    string
}

// UpdatePageInput carries a partial update. Nil fields keep the stored value.
// Markdown and HTML are separate so a request can switch mode and supply the
// matching source in one call; whichever matches the effective mode wins.
type UpdatePageInput struct {
	Title    *string
	Markdown *string
	HTML     *string
	Mode     *string
}

// PageSummary is the list-endpoint projection of a page.
type PageSummary struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Summary   string    `json:"summary"`
	Mode      string    `json:"mode"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Create validates and persists a new page. The slug uniqueness constraint
// decides concurrent create races: exactly one insert wins, the rest see
// ErrSlugTaken.
func (s *PageService) Create(in CreatePageInput) (*db.Page, error) {
	if !slugPattern.MatchString(in.Slug) {
		return nil, ErrInvalidSlug
	}

	mode := strings.TrimSpace(in.Mode)
	if mode == "" {
		mode = db.ModeMarkdown
	}
	if mode != db.ModeMarkdown && mode != db.ModeHTML {
		return nil, ErrInvalidMode
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleMissing
	}

	if strings.TrimSpace(in.Content) == "" {
		return nil, ErrContentMissing
	}

	if s.staticConflict(in.Slug) {
		return nil, ErrSlugReserved
	}

	page := db.Page{
		Slug:    in.Slug,
		Title:   title,
		Content: in.Content,
		Mode:    mode,
	}
	if err := s.db.Create(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}

	return &page, nil
}

// GetBySlug fetches a page for a given slug. A slug that fails validation
// cannot exist, so it reports ErrPageNotFound rather than a validation error.
func (s *PageService) GetBySlug(slug string) (*db.Page, error) {
	if !slugPattern.MatchString(slug) {
		return nil, ErrPageNotFound
	}

	var page db.Page
	if err := s.db.Where("slug = ?", slug).First(&page).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// Update applies a partial update to the page behind slug. It runs in a
// transaction so a validation failure or write error leaves the stored row
// untouched. The slug itself never changes.
func (s *PageService) Update(slug string, in UpdatePageInput) (*db.Page, error) {
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}

	var page db.Page
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("slug = ?", slug).First(&page).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPageNotFound
			}
			return err
		}

		mode := page.Mode
		if in.Mode != nil {
			mode = strings.TrimSpace(*in.Mode)
			if mode != db.ModeMarkdown && mode != db.ModeHTML {
				return ErrInvalidMode
			}
		}

		if in.Title != nil {
			title := strings.TrimSpace(*in.Title)
			if title == "" {
				return ErrTitleMissing
			}
			page.Title = title
		}

		content := in.Markdown
		if mode == db.ModeHTML {
			content = in.HTML
		}
		if content != nil {
			if strings.TrimSpace(*content) == "" {
				return ErrContentMissing
			}
			page.Content = *content
		}

		page.Mode = mode
		result := tx.Save(&page)
		if result.Error != nil {
			return result.Error
		}
		// The row can vanish between the First and the Save when a delete
		// wins the race; report it rather than a successful no-op update.
		if result.RowsAffected == 0 {
			return ErrPageNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &page, nil
}

// Delete removes the page behind slug. Deleting an absent slug reports
// ErrPageNotFound and changes nothing.
func (s *PageService) Delete(slug string) error {
	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}

	result := s.db.Where("slug = ?", slug).Delete(&db.Page{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPageNotFound
	}
	return nil
}

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// List returns page summaries, most recently updated first with the slug as a
// deterministic tie-breaker.
func (s *PageService) List(limit, offset int) ([]PageSummary, error) {
	pages, err := s.Recent(limit, offset)
	if err != nil {
		return nil, err
	}

	summaries := make([]PageSummary, 0, len(pages))
	for i := range pages {
		summaries = append(summaries, PageSummary{
			Slug:      pages[i].Slug,
			Title:     pages[i].Title,
			Summary:   summarize(&pages[i]),
			Mode:      pages[i].Mode,
			UpdatedAt: pages[i].UpdatedAt,
		})
	}
	return summaries, nil
}

// Recent returns full page rows in list order, for the public index.
func (s *PageService) Recent(limit, offset int) ([]db.Page, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var pages []db.Page
	err := s.db.
		Order("updated_at DESC, slug ASC").
		Limit(limit).
		Offset(offset).
		Find(&pages).Error
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// summarize reduces page content to a short plain-text excerpt for listings.
// Markdown is converted first so its syntax does not leak into the excerpt;
// the tag strip here only shapes the summary and has no bearing on how pages
// themselves are rendered.
func summarize(page *db.Page) string {
	source := page.Content
	if page.Mode == db.ModeMarkdown {
		var buf bytes.Buffer
		if err := summaryEngine.Convert([]byte(page.Content), &buf); err == nil {
			source = buf.String()
		}
	}

	plain := html.UnescapeString(summaryStrip.Sanitize(source))
	plain = strings.Join(strings.Fields(plain), " ")
	if plain == "" {
		return ""
	}

	const limit = 120
	if utf8.RuneCountInString(plain) <= limit {
		return plain
	}

	runes := []rune(plain)
	return string(runes[:limit]) + "…"
}

func (s *PageService) staticConflict(slug string) bool {
	if strings.TrimSpace(s.staticDir) == "" {
		return false
	}

	base := filepath.Join(s.staticDir, "pages", slug)
	for _, candidate := range []string{
		base,
		base + ".html",
		filepath.Join(base, "index.html"),
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return true
		}
	}
	return false
}
