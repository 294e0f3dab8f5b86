package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// serviceActorID is the audit identity attached to requests authenticated
// with the service API key (the price feed, batch jobs).
const serviceActorID = "service"

// APIKeyAuth authenticates requests carrying the x-api-key header against
// the configured bcrypt hash. A valid key satisfies auth and the JWT
// middleware skips; a missing or invalid key falls through so operators can
// still authenticate with a bearer token.
func APIKeyAuth(apiKeyHash string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKeyHash == "" {
			c.Next()
			return
		}

		key := c.GetHeader("x-api-key")
		if key == "" {
			c.Next()
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(apiKeyHash), []byte(key)); err != nil {
			GetLoggerFromCtx(c.Request.Context()).Warn("API key rejected")
			c.Next()
			return
		}

		c.Set(string(actorIDKey), serviceActorID)
		c.Set("authMethod", "api_key")
		c.Next()
	}
}
