package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/dabipages/internal/service"
	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// ShowPage renders a page as a public HTML document.
func (a *API) ShowPage(c *gin.Context) {
	page, err := a.pages.GetBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		log.Printf("failed to load page: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	doc, err := a.renderer.RenderDocument(page)
	if err != nil {
		log.Printf("failed to render page %q: %v", page.Slug, err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Data(http.StatusOK, htmlContentType, []byte(doc))
}

// ShowPageIndex renders the public listing of published pages.
func (a *API) ShowPageIndex(c *gin.Context) {
	pages, err := a.pages.Recent(100, 0)
	if err != nil {
		log.Printf("failed to list pages: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	doc, err := a.renderer.RenderIndex(pages)
	if err != nil {
		log.Printf("failed to render page index: %v", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	c.Data(http.StatusOK, htmlContentType, []byte(doc))
}
