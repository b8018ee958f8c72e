package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"blog-service/app/port"
	"blog-service/app/rest/handlers"
	custommw "blog-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AccountUsecase port.AccountUsecase
	PostUsecase    port.PostUsecase
	Sessions       port.SessionPublisher
	DatabaseCheck  handlers.HealthChecker
	KratosCheck    handlers.HealthChecker
	EnableDebug    bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	accountHandler := handlers.NewAccountHandler(config.AccountUsecase, config.Sessions, config.Logger)
	postHandler := handlers.NewPostHandler(config.PostUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DatabaseCheck, config.KratosCheck, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.Sessions, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Account endpoints
	account := v1.Group("/account")
	account.POST("/register", accountHandler.Register)
	account.POST("/login", accountHandler.Login)
	account.POST("/logout", accountHandler.SignOut)
	account.GET("/session", accountHandler.Session)

	// Content endpoints: browsing is public, publishing requires a session
	v1.GET("/posts", postHandler.FrontPage)
	v1.GET("/posts/:postId", postHandler.Get)
	v1.POST("/posts", postHandler.Publish, authMiddleware.RequireSignIn())
	v1.GET("/authors/:username", postHandler.AuthorPage)

	return e
}
