package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const apiKeyHeader = "X-API-Key"

// RequireAPIKey guards mutating routes with the single operator key.
// Rejections carry a constant body and happen before any store access, so a
// failed attempt learns nothing about whether the targeted slug exists.
func (a *API) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(apiKeyHeader) != a.apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}
		c.Next()
	}
}
