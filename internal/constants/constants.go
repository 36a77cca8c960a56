package constants

// Session / context keys
const (
	SessionCookieName = "todo_session"
	ContextKeyUser    = "user"

	SessionKeyFromProtected = "from_protected"
	SessionKeyTimezone      = "time_zone"
)

// Token handling
const (
	TokenCookieName = "token"
	TokenMaxAgeSecs = 3600 // mirrors the 60 minute claim lifetime
)

// Flash message levels
const (
	FlashSuccess = "Success"
	FlashError   = "Error"
)
