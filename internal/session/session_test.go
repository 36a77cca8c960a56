package session

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/constants"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))

	r.GET("/set", func(c *gin.Context) {
		_ = SetFromProtected(c, true)
		_ = SetTimezone(c, "Europe/Madrid")
		c.Status(http.StatusOK)
	})
	r.GET("/get", func(c *gin.Context) {
		c.String(http.StatusOK, fmt.Sprintf("%t %s", FromProtected(c), Timezone(c)))
	})
	r.GET("/flash", func(c *gin.Context) {
		_ = AddFlash(c, constants.FlashSuccess, "You have successfully logged in!!")
		c.Status(http.StatusOK)
	})
	r.GET("/messages", func(c *gin.Context) {
		status, text := PopMessages(c)
		c.String(http.StatusOK, status+"|"+text)
	})
	return r
}

func get(r *gin.Engine, path string, carry []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range carry {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSessionFlags_DefaultsWhenUnset(t *testing.T) {
	r := setupRouter()

	w := get(r, "/get", nil)
	require.Equal(t, "false ", w.Body.String())
}

func TestSessionFlags_RoundTrip(t *testing.T) {
	r := setupRouter()

	w := get(r, "/set", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/get", w.Result().Cookies())
	require.Equal(t, "true Europe/Madrid", w.Body.String())
}

func TestFlashMessages_AreOneShot(t *testing.T) {
	r := setupRouter()

	w := get(r, "/flash", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = get(r, "/messages", w.Result().Cookies())
	require.Equal(t, "Success|You have successfully logged in!!", w.Body.String())

	// Reading drains the queue.
	w = get(r, "/messages", w.Result().Cookies())
	require.Equal(t, "|", w.Body.String())
}

func TestFlashMessages_ErrorTakesPrecedence(t *testing.T) {
	r := setupRouter()
	r.GET("/both", func(c *gin.Context) {
		_ = AddFlash(c, constants.FlashSuccess, "ok")
		_ = AddFlash(c, constants.FlashError, "boom")
		c.Status(http.StatusOK)
	})

	w := get(r, "/both", nil)
	w = get(r, "/messages", w.Result().Cookies())
	require.Equal(t, "Error|boom", w.Body.String())
}
