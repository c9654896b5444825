package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetAuthCookie stores the session token as an HttpOnly cookie.
func SetAuthCookie(c *gin.Context, name, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, maxAge, "/", "", secure, true)
}

// ClearAuthCookie expires the session cookie.
func ClearAuthCookie(c *gin.Context, name string, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", secure, true)
}
