package handlers

import (
	"garagat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger retrieves the request logger from the Gin context or falls back to the global one.
func getLogger(c *gin.Context) *zap.Logger {
	return utils.RequestLogger(c)
}

// currentUserID is the customer ID set by JWTAuthUserMiddleware.
func currentUserID(c *gin.Context) (string, bool) {
	id := c.GetString(utils.UserIDKey)
	return id, id != ""
}
