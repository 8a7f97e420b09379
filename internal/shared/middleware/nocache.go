package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// NoCache disables client caching for requests whose path starts with one
// of the given prefixes.
func NoCache(prefixes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, p := range prefixes {
			if strings.HasPrefix(path, p) {
				c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
				c.Header("Pragma", "no-cache")
				c.Header("Expires", "0")
				break
			}
		}
		c.Next()
	}
}
