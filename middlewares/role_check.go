package middlewares

import (
	"fmt"
	"net/http"

	"github.com/burgasdigital/qr-menu/utils"
	"github.com/gin-gonic/gin"
)

// RequireAdmin allows only users with the admin role past.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}
		if role != "admin" {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
