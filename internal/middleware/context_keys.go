package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the authenticated operator's ID in the
// request context.
const actorIDKey = contextKey("actorID")

// GetActorIDFromContext retrieves the authenticated operator ID placed in the
// context by the auth middlewares. Every repository-bound mutation requires
// it for the audit trail.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	if v, exists := c.Get(string(actorIDKey)); exists {
		if actorID, ok := v.(string); ok {
			return actorID, true
		}
		return "", false
	}
	if v := c.Request.Context().Value(actorIDKey); v != nil {
		actorID, ok := v.(string)
		return actorID, ok
	}
	return "", false
}
