package config

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware echoes the Origin header back for configured origins.
// Preview deployments are admitted by suffix so every ephemeral frontend URL
// does not need to be listed.
func CORSMiddleware(cfg *Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if originAllowed(cfg, origin) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func originAllowed(cfg *Config, origin string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return cfg.PreviewOriginSuffix != "" && strings.HasSuffix(origin, cfg.PreviewOriginSuffix)
}
