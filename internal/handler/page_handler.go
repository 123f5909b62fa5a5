package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/dabipages/internal/db"
	"github.com/dabipages/internal/service"
	"github.com/gin-gonic/gin"
)

type createPagePayload struct {
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
	Mode     string `json:"mode"`
}

type updatePagePayload struct {
	Title    *string `json:"title"`
	Markdown *string `json:"markdown"`
	HTML     *string `json:"html"`
	Mode     *string `json:"mode"`
}

func pageResponse(page *db.Page) gin.H {
	return gin.H{
		"slug":      page.Slug,
		"title":     page.Title,
		"content":   page.Content,
		"mode":      page.Mode,
		"createdAt": page.CreatedAt.Format(time.RFC3339),
		"updatedAt": page.UpdatedAt.Format(time.RFC3339),
	}
}

// CreatePage handles POST /api/pages.
func (a *API) CreatePage(c *gin.Context) {
	var payload createPagePayload
	if !bindJSON(c, &payload, "invalid JSON body") {
		return
	}

	mode := strings.TrimSpace(payload.Mode)
	if mode == "" {
		mode = db.ModeMarkdown
	}
	content := payload.Markdown
	if mode == db.ModeHTML {
		content = payload.HTML
	}

	page, err := a.pages.Create(service.CreatePageInput{
		Slug:    payload.Slug,
		Title:   payload.Title,
		Content: content,
		Mode:    mode,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, pageResponse(page))
}

// GetPage handles GET /api/pages/:slug.
func (a *API) GetPage(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, pageResponse(page))
}

// UpdatePage handles PUT and PATCH /api/pages/:slug. Absent fields keep their
// stored values.
func (a *API) UpdatePage(c *gin.Context) {
	var payload updatePagePayload
	if !bindJSON(c, &payload, "invalid JSON body") {
		return
	}

	page, err := a.pages.Update(c.Param("slug"), service.UpdatePageInput{
		Title:    payload.Title,
		Markdown: payload.Markdown,
		HTML:     payload.HTML,
		Mode:     payload.Mode,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, pageResponse(page))
}

// DeletePage handles DELETE /api/pages/:slug.
func (a *API) DeletePage(c *gin.Context) {
	if err := a.pages.Delete(c.Param("slug")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPages handles GET /api/pages. Listing is read-only and public.
func (a *API) ListPages(c *gin.Context) {
	limit := parseNonNegativeInt(c.Query("limit"), 0)
	offset := parseNonNegativeInt(c.Query("offset"), 0)

	items, err := a.pages.List(limit, offset)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}
