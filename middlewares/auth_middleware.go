package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nate-han123/Mind-Scroll/services"
)

const (
	CtxSession = "session"
	CtxUser    = "user"
)

// RequireSession is the route guard for everything behind login. A missing,
// invalid or cleared session answers 401 with a redirect hint; logged-out
// clients land on the login screen instead of a broken page.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortToLogin(c)
			return
		}

		sess, err := auth.SessionFromToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortToLogin(c)
			return
		}

		// A token for a cleared session is as good as no token.
		user, ok := sess.User()
		if !ok {
			abortToLogin(c)
			return
		}

		c.Set(CtxSession, sess)
		c.Set(CtxUser, user)
		c.Next()
	}
}

func abortToLogin(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    "not logged in",
		"redirect": "/login",
	})
}

// SessionFrom pulls the guard's session out of the request context.
func SessionFrom(c *gin.Context) services.Session {
	return c.MustGet(CtxSession).(services.Session)
}
