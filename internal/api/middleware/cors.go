package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSConfig lists the origins allowed outside development
type CORSConfig struct {
	AllowedOrigins []string
	Production     bool
}

// CORS middleware. The portal API is read-only, so only GET and OPTIONS are allowed.
func CORS(config CORSConfig) gin.HandlerFunc {
	wildcard := false
	for _, allowed := range config.AllowedOrigins {
		if strings.TrimSpace(allowed) == "*" {
			wildcard = true
		}
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if !config.Production {
			// In development, be more permissive - accept any origin
			if origin != "" {
				c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			} else {
				c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			}
		} else if len(config.AllowedOrigins) > 0 && origin != "" {
			// Requests without Origin are not cross-origin and pass untouched
			originAllowed := wildcard
			for _, allowed := range config.AllowedOrigins {
				if origin == strings.TrimSpace(allowed) {
					originAllowed = true
					break
				}
			}

			if !originAllowed {
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Add("Vary", "Origin")
		} else if len(config.AllowedOrigins) == 0 {
			// Fallback if no allowed origins configured
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept, Origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length, X-Request-ID, X-RateLimit-Remaining")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
