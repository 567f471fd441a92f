package middleware

import (
	"github.com/gin-gonic/gin"

	"library-catalog/internal/shared/utils"
)

const ClientIPKey = "client_ip"

// ClientIP resolves the caller's address once, honouring proxy headers, and
// stores it under ClientIPKey for the handlers and request logger.
func ClientIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClientIPKey, utils.ExtractClientIP(c))
		c.Next()
	}
}
