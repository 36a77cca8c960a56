// Package session wraps gin-contrib/sessions with the small set of
// per-browser-session values the app keeps outside the token: the
// "has this session reached a protected area" flag, the client
// timezone, and one-shot flash messages.
package session

import (
	"strings"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/constants"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// SetFromProtected records whether the browser session last passed
// the authorization gate. A failed save is fatal to the request.
func SetFromProtected(c *gin.Context, fromProtected bool) error {
	s := sessions.Default(c)
	s.Set(constants.SessionKeyFromProtected, fromProtected)
	return s.Save()
}

// FromProtected reads the flag, defaulting to false when unset.
func FromProtected(c *gin.Context) bool {
	v, _ := sessions.Default(c).Get(constants.SessionKeyFromProtected).(bool)
	return v
}

// SetTimezone stores the client's IANA timezone sent on login.
func SetTimezone(c *gin.Context, tzone string) error {
	s := sessions.Default(c)
	s.Set(constants.SessionKeyTimezone, tzone)
	return s.Save()
}

// Timezone reads the stored timezone, defaulting to the empty string.
func Timezone(c *gin.Context) string {
	v, _ := sessions.Default(c).Get(constants.SessionKeyTimezone).(string)
	return v
}

// AddFlash queues a one-shot message under the given level
// (constants.FlashSuccess or constants.FlashError) for the next render.
func AddFlash(c *gin.Context, level, message string) error {
	s := sessions.Default(c)
	s.AddFlash(message, level)
	return s.Save()
}

// PopMessages drains queued flash messages and returns them as a
// (status, text) pair the templates understand. Error messages take
// precedence over success messages.
func PopMessages(c *gin.Context) (status, text string) {
	s := sessions.Default(c)

	if msgs := drain(s.Flashes(constants.FlashError)); msgs != "" {
		status, text = constants.FlashError, msgs
	} else if msgs := drain(s.Flashes(constants.FlashSuccess)); msgs != "" {
		status, text = constants.FlashSuccess, msgs
	}

	// Flashes are only cleared once the session is written back.
	_ = s.Save()
	return status, text
}

func drain(flashes []interface{}) string {
	parts := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, ", ")
}
