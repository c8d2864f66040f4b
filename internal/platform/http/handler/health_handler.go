// Package handler provides HTTP handlers for platform-level endpoints.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health handles the /healthz service health check. It responds to
// GET/HEAD/OPTIONS and prevents caching.
func Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}

// Welcome handles GET /api, the API test route.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the PawFinders API"})
}
