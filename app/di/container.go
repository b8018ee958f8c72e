package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"blog-service/app/config"
	"blog-service/app/driver/kratos"
	"blog-service/app/driver/postgres"
	"blog-service/app/port"
	"blog-service/app/rest"
	"blog-service/app/usecase"
	"blog-service/app/utils/retry"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client
	Gateway      *kratos.Gateway

	// Usecases
	AccountUsecase port.AccountUsecase
	PostUsecase    port.PostUsecase
	Sessions       *usecase.SessionObserver

	watchCancel context.CancelFunc
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}
	container.Gateway = kratos.NewGateway(container.KratosClient, logger)

	// Initialize repositories
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)
	postRepository := postgres.NewPostRepository(container.DB.Pool(), logger)

	// Initialize usecases
	insertPolicy := retry.Policy{
		MaxAttempts: cfg.ProfileInsertAttempts,
		Delay:       cfg.ProfileInsertDelay,
	}
	container.AccountUsecase = usecase.NewAccountUseCase(container.Gateway, profileRepository, insertPolicy, logger)
	container.PostUsecase = usecase.NewPostUseCase(postRepository, profileRepository, logger)
	container.Sessions = usecase.NewSessionObserver(container.Gateway, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// StartSessionObserver resolves the initial session state and keeps it fresh
// by polling the credential store in the background until Close is called.
func (c *Container) StartSessionObserver(ctx context.Context) {
	c.Sessions.Start(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	c.watchCancel = cancel
	go c.Gateway.Watch(watchCtx, c.Config.SessionRefreshInterval)
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:         c.Logger,
		AccountUsecase: c.AccountUsecase,
		PostUsecase:    c.PostUsecase,
		Sessions:       c.Sessions,
		DatabaseCheck:  c.DB,
		KratosCheck:    c.KratosClient,
		EnableDebug:    c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.watchCancel != nil {
		c.watchCancel()
	}
	if c.Sessions != nil {
		c.Sessions.Stop()
	}

	if c.DB != nil {
		c.DB.Close()
	}

	// Note: Kratos client doesn't need explicit cleanup

	c.Logger.Info("Container closed successfully")
	return nil
}
