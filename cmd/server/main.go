package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/auth"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/config"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/constants"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/database"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/handlers"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/logging"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/middleware"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/services"
	"github.com/reanestrella/cell-growth-hub-sub000/internal/validation"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)
	validation.RegisterWithGin()

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		fatal("failed to connect to database", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		fatal("failed to run migrations", err)
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	r.Use(middleware.NewMetrics(registry).Handler())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,                        // Redis pool size
		"tcp",                     // network type
		redisAddr,                 // Redis address from config
		"",                        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		fatal("failed to create Redis store", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == gin.ReleaseMode
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Cell Growth Hub API is running",
		})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(r, handlers.Dependencies{
		DB:            db,
		Tokens:        auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL),
		AI:            services.NewAIService(cfg.OpenAIAPIKey),
		InvitationTTL: cfg.InvitationTTL,
		AppBaseURL:    cfg.AppBaseURL,
	})

	// Start server
	slog.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		fatal("failed to start server", err)
	}
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}
