package httpserver

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

// sessionHeader identifies the shopper's cart/checkout session. The SPA
// stores the value and sends it with every shop request.
const sessionHeader = "X-Session-ID"

const sessionCtxKey = "sessionID"

// sessionMiddleware reads the session header, minting a fresh id when the
// client has none, and always echoes the id back.
func sessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if id == "" {
			id = newSessionID()
		}
		c.Set(sessionCtxKey, id)
		c.Header(sessionHeader, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionCtxKey)
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(buf)
}
