package middleware

import (
	"net/http"
	"strings"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/constants"
	apperrors "github.com/emarifer/go-gin-htmx-todoapp/internal/errors"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/services"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/session"
	"github.com/emarifer/go-gin-htmx-todoapp/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RequireAuth is the authorization gate in front of every protected
// route. It extracts a token (cookie first, then bearer header),
// verifies it, resolves the user and attaches it to the request
// context. Any rejection flips the session flag off and renders a 401
// page; the downstream handler never runs.
func RequireAuth(authService *services.AuthService, tokenService *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			reject(c, apperrors.ErrNoToken)
			return
		}

		claims, err := tokenService.Verify(token)
		if err != nil {
			reject(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := authService.GetUserByID(claims.Subject)
		if err != nil {
			reject(c, err)
			return
		}
		if user == nil {
			reject(c, apperrors.ErrUserGone)
			return
		}

		if err := session.SetFromProtected(c, true); err != nil {
			c.HTML(http.StatusInternalServerError, "error_500.html", gin.H{
				"title":   "Error 500",
				"reason":  err.Error(),
				"link":    "/",
				"isError": true,
			})
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// CurrentUser retrieves the authenticated user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(constants.TokenCookieName); err == nil && cookie != "" {
		return cookie
	}
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

func reject(c *gin.Context, err error) {
	log := logger.Get()
	log.Debug().
		Str("path", c.Request.URL.Path).
		Str("kind", string(apperrors.KindOf(err))).
		Msg("request rejected by authorization gate")

	_ = session.SetFromProtected(c, false)

	c.HTML(http.StatusUnauthorized, "error_401.html", gin.H{
		"title":   "Error 401",
		"reason":  err.Error(),
		"isError": true,
	})
	c.Abort()
}
