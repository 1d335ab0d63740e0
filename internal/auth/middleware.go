package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

const userIDKey = "user_id"

// Middleware verifies the bearer credential on every request before any
// operation is dispatched. Requests without a valid token never reach the
// query layer.
func Middleware(secret string, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "authorization header required")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			logger.WithError(err).Debug("Rejected bearer token")
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["type"] != "access" {
			abortUnauthorized(c, "invalid token type")
			return
		}

		if id, ok := claims[userIDKey].(float64); ok {
			c.Set(userIDKey, uint(id))
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user ID, or 0 when the request
// carried no identity claim.
func GetUserID(c *gin.Context) uint {
	id, exists := c.Get(userIDKey)
	if !exists {
		return 0
	}
	return id.(uint)
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{"kind": "UNAUTHORIZED", "message": msg},
	})
}
