package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/bookably/appointment-api/internal/config"
	"github.com/bookably/appointment-api/internal/tokenstore"
)

const (
	ContextUserID   = "userID"
	ContextTokenID  = "tokenID"
	ContextTokenExp = "tokenExp"
)

func AuthMiddleware(cfg *config.Config, tokens tokenstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		userID, ok := claims["sub"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
			return
		}

		tokenID, _ := claims["jti"].(string)
		if tokens != nil && tokenID != "" {
			revoked, err := tokens.IsRevoked(c.Request.Context(), tokenID)
			if err != nil || revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthenticated."})
				return
			}
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextTokenID, tokenID)
		if exp, ok := claims["exp"].(float64); ok {
			c.Set(ContextTokenExp, time.Unix(int64(exp), 0))
		}

		c.Next()
	}
}
