package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/cache"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/constants"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/database"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/middleware"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/repository"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/services"
)

type testEnv struct {
	db           *gorm.DB
	router       *gin.Engine
	authService  *services.AuthService
	tokenService *services.TokenService
	todoService  *services.TodoService
	todos        *cache.TodoCache
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Todo{})
	require.NoError(t, err)

	database.SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	todoRepo := repository.NewTodoRepository(db)
	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService("test-secret")
	todoService := services.NewTodoService(todoRepo)
	todos := cache.New()

	authHandler := NewAuthHandler(authService, tokenService, todoService, todos)
	todoHandler := NewTodoHandler(todoService, todos)

	r := gin.New()
	r.LoadHTMLGlob("../../templates/*.html")

	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	r.GET("/", authHandler.Home)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/healthchecker", authHandler.HealthCheck)

	authorized := r.Group("/", middleware.RequireAuth(authService, tokenService))
	{
		authorized.GET("/todo/list", todoHandler.List)
		authorized.POST("/logout", authHandler.Logout)
		authorized.GET("/create", todoHandler.CreateModal)
		authorized.POST("/create", todoHandler.Create)
		authorized.GET("/edit", todoHandler.EditModal)
		authorized.POST("/edit", todoHandler.Update)
		authorized.DELETE("/delete", todoHandler.Delete)
	}
	r.NoRoute(authHandler.NotFound)

	return &testEnv{
		db:           db,
		router:       r,
		authService:  authService,
		tokenService: tokenService,
		todoService:  todoService,
		todos:        todos,
	}
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func tokenCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == constants.TokenCookieName {
			return c
		}
	}
	return nil
}

func TestRegisterThenLogin(t *testing.T) {
	env := setupTestEnv(t)

	w := postForm(t, env.router, "/register", url.Values{
		"email":    {"[email protected]"},
		"password": {"pw123"},
		"username": {"bob"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	w = postForm(t, env.router, "/login", url.Values{
		"email":    {"[email protected]"},
		"password": {"pw123"},
	}, map[string]string{"x-timezone": "UTC"})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/todo/list", w.Header().Get("Location"))

	c := tokenCookie(w)
	require.NotNil(t, c, "expected a token cookie to be set")
	require.Equal(t, "/", c.Path)
	require.Equal(t, constants.TokenMaxAgeSecs, c.MaxAge)
	require.True(t, c.HttpOnly)

	// The cookie carries a token the service itself accepts.
	claims, err := env.tokenService.Verify(c.Value)
	require.NoError(t, err)
	require.NotEmpty(t, claims.Subject)
}

func TestLoginWithWrongPassword(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.CreateUser(services.RegisterInput{
		Email:    "[email protected]",
		Password: "pw123",
		Username: "bob",
	})
	require.NoError(t, err)

	w := postForm(t, env.router, "/login", url.Values{
		"email":    {"[email protected]"},
		"password": {"wrong"},
	}, map[string]string{"x-timezone": "UTC"})

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))
	require.Nil(t, tokenCookie(w), "no token cookie on credential failure")
}

func TestRegisterWithDuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.authService.CreateUser(services.RegisterInput{
		Email:    "[email protected]",
		Password: "pw123",
		Username: "bob",
	})
	require.NoError(t, err)

	w := postForm(t, env.router, "/register", url.Values{
		"email":    {"[email protected]"},
		"password": {"other"},
		"username": {"bobby"},
	}, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/register", w.Header().Get("Location"))
}

func TestLoginRebuildsTodoCache(t *testing.T) {
	env := setupTestEnv(t)

	user, err := env.authService.CreateUser(services.RegisterInput{
		Email:    "[email protected]",
		Password: "pw123",
		Username: "bob",
	})
	require.NoError(t, err)

	_, err = env.todoService.Add(user.ID, "first", "")
	require.NoError(t, err)
	_, err = env.todoService.Add(user.ID, "second", "")
	require.NoError(t, err)

	w := postForm(t, env.router, "/login", url.Values{
		"email":    {"[email protected]"},
		"password": {"pw123"},
	}, map[string]string{"x-timezone": "UTC"})
	require.Equal(t, http.StatusFound, w.Code)

	todos := env.todos.ReadAll(user.ID)
	require.Len(t, todos, 2)
}

func TestLogout(t *testing.T) {
	env := setupTestEnv(t)

	user, err := env.authService.CreateUser(services.RegisterInput{
		Email:    "[email protected]",
		Password: "pw123",
		Username: "bob",
	})
	require.NoError(t, err)

	token, err := env.tokenService.Issue(user.ID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: token})
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	c := tokenCookie(w)
	require.NotNil(t, c)
	require.Empty(t, c.Value)
	require.Negative(t, c.MaxAge)
}

func TestHealthChecker(t *testing.T) {
	env := setupTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/healthchecker", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"success"`)
}
