package middleware

import (
	"log"
	"net/http"

	"plantnet/models"
	"plantnet/services"
	"plantnet/utils"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserKey      = "user"
	CtxUserEmailKey = "user_email"
)

func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "unauthorized access",
			})
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			log.Println(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Message: "unauthorized access",
			})
			return
		}

		c.Set(CtxUserKey, claims)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Next()
	}
}
