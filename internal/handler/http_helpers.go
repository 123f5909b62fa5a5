package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/dabipages/internal/service"
	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// respondServiceError maps store errors onto the API status taxonomy.
// Unexpected errors are logged server-side and answered with a generic body;
// storage engine detail never reaches the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPageNotFound):
		respondError(c, http.StatusNotFound, "page not found")
	case errors.Is(err, service.ErrSlugTaken):
		respondError(c, http.StatusConflict, "slug already exists")
	case errors.Is(err, service.ErrSlugReserved):
		respondError(c, http.StatusConflict, "slug conflicts with a static page")
	case errors.Is(err, service.ErrInvalidSlug),
		errors.Is(err, service.ErrInvalidMode),
		errors.Is(err, service.ErrTitleMissing),
		errors.Is(err, service.ErrContentMissing):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		log.Printf("page store error: request_id=%s err=%v", c.Writer.Header().Get("X-Request-ID"), err)
		respondError(c, http.StatusInternalServerError, "internal error")
	}
}

func parseNonNegativeInt(raw string, fallback int) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
