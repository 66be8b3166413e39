package cookie

import (
	"glisten-lounge/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// The bag session cookie carries an opaque session ID; the bag contents
// themselves live server-side in the bag store keyed by that ID.

func GetBagSession(c *gin.Context, cfg config.BagConfig) string {
	id, _ := c.Cookie(cfg.CookieName)
	return id
}

// EnsureBagSession returns the visitor's bag session ID, minting and setting
// one when the cookie is absent.
func EnsureBagSession(c *gin.Context, cfg config.BagConfig) string {
	if id := GetBagSession(c, cfg); id != "" {
		return id
	}

	id := uuid.NewString()
	c.SetCookie(
		cfg.CookieName,
		id,
		int(cfg.SessionTTL.Seconds()),
		"/",
		cfg.CookieDomain,
		cfg.CookieSecure,
		true, // HttpOnly
	)
	return id
}
