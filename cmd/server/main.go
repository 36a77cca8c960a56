package main

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/memstore"
	"github.com/gin-gonic/gin"

	"github.com/emarifer/go-gin-htmx-todoapp/internal/cache"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/config"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/constants"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/database"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/handlers"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/middleware"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/repository"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/services"
	"github.com/emarifer/go-gin-htmx-todoapp/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Gin router
	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	r.Static("/assets", "./assets")

	// Session state lives in process memory; flags and flash messages
	// do not survive a restart.
	store := memstore.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		Secure:   cfg.GinMode == "release",
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Shared application state
	todoCache := cache.New()

	// Initialize services
	userRepo := repository.NewUserRepository(database.GetDB())
	todoRepo := repository.NewTodoRepository(database.GetDB())
	authService := services.NewAuthService(userRepo)
	tokenService := services.NewTokenService(cfg.JWTSecret)
	todoService := services.NewTodoService(todoRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, tokenService, todoService, todoCache)
	todoHandler := handlers.NewTodoHandler(todoService, todoCache)

	// Public routes
	r.GET("/", authHandler.Home)
	r.GET("/register", authHandler.RegisterPage)
	r.POST("/register", authHandler.Register)
	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/healthchecker", authHandler.HealthCheck)

	// Protected routes
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

	// Fallback for unknown paths
	r.NoRoute(authHandler.NotFound)

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
