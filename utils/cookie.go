package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const SessionCookieName = "token"

// sameSite mirrors the cross-site policy of the frontend: in production it is
// served from another origin, so the cookie has to be SameSite=None; Secure.
func sameSite(production bool) http.SameSite {
	if production {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, production bool) {
	c.SetSameSite(sameSite(production))
	c.SetCookie(SessionCookieName, token, int(ttl.Seconds()), "/", "", production, true)
}

func ClearSessionCookie(c *gin.Context, production bool) {
	c.SetSameSite(sameSite(production))
	c.SetCookie(SessionCookieName, "", -1, "/", "", production, true)
}
