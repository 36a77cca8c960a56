package handlers

import (
	"net/http"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/cache"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/constants"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/services"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/session"
	"github.com/emarifer/go-gin-htmx-todoapp/pkg/logger"
	"github.com/gin-gonic/gin"
)

// AuthHandler coordinates registration, login and logout.
type AuthHandler struct {
	authService  *services.AuthService
	tokenService *services.TokenService
	todoService  *services.TodoService
	todos        *cache.TodoCache
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authService *services.AuthService,
	tokenService *services.TokenService,
	todoService *services.TodoService,
	todos *cache.TodoCache,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		todoService:  todoService,
		todos:        todos,
	}
}

// Home serves the home page.
func (h *AuthHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title":         "Home",
		"fromProtected": session.FromProtected(c),
	})
}

// RegisterPage serves the registration form.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	status, messages := session.PopMessages(c)
	c.HTML(http.StatusOK, "register.html", gin.H{
		"title":          "Register",
		"messagesStatus": status,
		"messages":       messages,
		"fromProtected":  session.FromProtected(c),
	})
}

// Register handles the POST of the registration form.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterForm struct {
		Email    string `form:"email" binding:"required"`
		Password string `form:"password" binding:"required"`
		Username string `form:"username" binding:"required"`
	}

	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		if !addFlash(c, constants.FlashError, "Something went wrong: all fields are required.") {
			return
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	_, err := h.authService.CreateUser(services.RegisterInput{
		Email:    form.Email,
		Password: form.Password,
		Username: form.Username,
	})
	if err != nil {
		if !addFlash(c, constants.FlashError, "Something went wrong: "+err.Error()) {
			return
		}
		c.Redirect(http.StatusFound, "/register")
		return
	}

	if !addFlash(c, constants.FlashSuccess, "You have successfully registered!!") {
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage serves the login form.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	status, messages := session.PopMessages(c)
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title":          "Login",
		"messagesStatus": status,
		"messages":       messages,
		"fromProtected":  session.FromProtected(c),
	})
}

// Login authenticates the user, sets the token cookie and rebuilds the
// user's slice of the todo cache from the database.
func (h *AuthHandler) Login(c *gin.Context) {
	// The client reports its IANA timezone on login; it is kept in the
	// session for timestamp display.
	if err := session.SetTimezone(c, c.GetHeader("x-timezone")); err != nil {
		renderError500(c, err.Error(), "/")
		return
	}

	type LoginForm struct {
		Email    string `form:"email" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		if !addFlash(c, constants.FlashError, "Something went wrong: email and password are required.") {
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := h.authService.CheckEmailPassword(form.Email, form.Password)
	if err != nil {
		if !addFlash(c, constants.FlashError, "Something went wrong: "+err.Error()) {
			return
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := h.tokenService.Issue(user.ID)
	if err != nil {
		renderError500(c, err.Error(), "/")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.TokenCookieName, token, constants.TokenMaxAgeSecs, "/", "", false, true)

	todos, err := h.todoService.ListByUser(user.ID)
	if err != nil {
		renderError500(c, err.Error(), "/")
		return
	}
	h.todos.ReplaceAll(user.ID, todos)

	log := logger.Get()
	log.Info().Str("user_id", user.ID).Msg("user logged in")

	if !addFlash(c, constants.FlashSuccess, "You have successfully logged in!!") {
		return
	}
	c.Redirect(http.StatusFound, "/todo/list")
}

// Logout clears the session flag and expires the token cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.SetFromProtected(c, false); err != nil {
		renderError500(c, err.Error(), "/")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.TokenCookieName, "", -1, "/", "", false, true)

	if !addFlash(c, constants.FlashSuccess, "You have successfully logged out!!") {
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// HealthCheck reports the status of the app.
func (h *AuthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Full stack Web App using Go's Gin framework, HTMX, JWT & SQLITE3",
	})
}

// NotFound handles unknown paths. The back link depends on whether the
// session has been through a protected area.
func (h *AuthHandler) NotFound(c *gin.Context) {
	link := "/"
	if session.FromProtected(c) {
		link = "/todo/list"
	}

	c.HTML(http.StatusNotFound, "error_404.html", gin.H{
		"title":   "Error 404",
		"reason":  "Nothing to see here",
		"link":    link,
		"isError": true,
	})
}
