package middleware

import (
	"errors"
	"net/http"
	"strings"

	"SwipeDeck/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// SessionIDKey is the gin context key holding the token's session id.
const SessionIDKey = "session_id"

type TokenValidator interface {
	Validate(token string) (*auth.Claims, error)
}

// SessionToken accepts a Bearer header or, for websocket upgrades that
// cannot set headers, a ?token= query parameter.
func SessionToken(v TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerOrQuery(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header or token query required"})
			return
		}

		claims, err := v.Validate(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(SessionIDKey, claims.SessionID)
		c.Next()
	}
}

func bearerOrQuery(c *gin.Context) (string, bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return "", false
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")
		return token, token != ""
	}
	token := c.Query("token")
	return token, token != ""
}
