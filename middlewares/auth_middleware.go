package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/burgasdigital/qr-menu/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and stores identity in context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		if header := c.GetHeader("Authorization"); header != "" {
			if !strings.HasPrefix(header, "Bearer ") {
				utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid token format"))
				c.Abort()
				return
			}
			tokenString = strings.TrimPrefix(header, "Bearer ")
		} else {
			// QR-embedded links may carry the token as a query parameter.
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization token missing"))
			c.Abort()
			return
		}
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if claims.UserID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid user id in token"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}
