package middleware

import (
	"net/http"

	"teamvote/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionCookie carries the member's opaque token. The max age is a client
// hint only; server-side validity is just the token lookup, with no expiry.
const (
	SessionCookie       = "users-token"
	SessionCookieMaxAge = 60 * 60 * 24
	APIKeyHeader        = "X-API-Key"

	memberKey = "member"
)

// APIKeyAuth gates admin endpoints behind the shared secret.
func APIKeyAuth(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader(APIKeyHeader) != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing API Key"})
			return
		}
		c.Next()
	}
}

// SessionAuth resolves the session cookie to a stored member. A missing
// cookie and a token that matches no member are reported separately.
func SessionAuth(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token cookie"})
			return
		}
		var m model.Member
		if err := db.WithContext(c.Request.Context()).Where("token = ?", token).First(&m).Error; err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(memberKey, &m)
		c.Next()
	}
}

// MemberFrom returns the member resolved by SessionAuth.
func MemberFrom(c *gin.Context) *model.Member {
	v, ok := c.Get(memberKey)
	if !ok {
		return nil
	}
	m, _ := v.(*model.Member)
	return m
}
