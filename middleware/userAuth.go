package middleware

import (
	"net/http"
	"strings"

	"garagat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthUserMiddleware requires a bearer token and stores its subject as the customer ID.
func JWTAuthUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
		if !strings.HasPrefix(authHeader, "Bearer ") || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Insufficient authorization",
			})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil {
			utils.RequestLogger(c).Debug("Rejected token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{
				Message: "Insufficient authorization",
				Details: "invalid or expired token",
			})
			return
		}

		c.Set(utils.UserIDKey, userID)
		if l, ok := c.Get(utils.LoggerKey); ok {
			if logger, ok := l.(*zap.Logger); ok {
				c.Set(utils.LoggerKey, logger.With(zap.String("userId", userID)))
			}
		}
		c.Next()
	}
}
