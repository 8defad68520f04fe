package routes

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "delivery_cart/docs"
	"delivery_cart/internal/adapter/http/handlers"
	"delivery_cart/internal/adapter/persistence/repository"
	"delivery_cart/internal/infrastructure/backend"
	"delivery_cart/internal/infrastructure/database"
	"delivery_cart/internal/infrastructure/logging"
	"delivery_cart/internal/usecase"
	"delivery_cart/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server and block until SIGINT or SIGTERM.
func Run() {
	logger, err := logging.New()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	setMiddlewares(logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	registry, closeStore, err := getRoutes(logger)
	if err != nil {
		logger.Fatal("failed to wire the application", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              ":" + getenvDefault("PORT", defaultPort),
		Handler:           corsHandler().Handler(router),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to startup the application", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	registry.Close()
	closeStore()
	logger.Info("server stopped")
}

func getRoutes(logger *zap.Logger) (*usecase.SessionRegistry, func(), error) {
	repo, closeStore, err := newStateRepository(context.Background(), logger)
	if err != nil {
		return nil, nil, err
	}

	backendClient := backend.NewClient(backend.Config{
		BaseURL: os.Getenv("BACKEND_URL"),
		Timeout: getenvSeconds("BACKEND_TIMEOUT_SECONDS", defaultBackendSeconds),
	}, logger.Named("backend"))

	registry := usecase.NewSessionRegistry(repo, backendClient, logger.Named("session"), usecase.RegistryConfig{
		PollInterval: getenvSeconds("STATUS_POLL_SECONDS", defaultPollSeconds),
		IdleTimeout:  getenvSeconds("SESSION_IDLE_SECONDS", defaultIdleSeconds),
	})

	sessionUseCase := usecase.NewSessionUseCase(registry)
	cartUseCase := usecase.NewCartUseCase(registry, logger.Named("cart"))
	siteUseCase := usecase.NewSiteUseCase(registry)

	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	cartHandler := handlers.NewCartHandler(cartUseCase)
	locationHandler := handlers.NewLocationHandler(siteUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSessionRoutes(v1, sessionHandler, cartHandler, locationHandler)

	return registry, closeStore, nil
}

// newStateRepository picks the session store from STATE_STORE. The returned
// func releases the store's connections.
func newStateRepository(ctx context.Context, logger *zap.Logger) (interfaces.ISessionStateRepository, func(), error) {
	switch store := strings.ToLower(getenvDefault("STATE_STORE", "dynamodb")); store {
	case "redis":
		client, err := database.ConnectRedis(ctx)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("session store ready", zap.String("store", store))
		return repository.NewSessionStateRedisRepository(client), func() { _ = client.Close() }, nil
	case "dynamodb":
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, nil, err
		}
		repo := repository.NewSessionStateDynamoRepository(ddb)
		if os.Getenv("DYNAMODB_ENDPOINT") != "" {
			if err := database.EnsureTable(ctx, ddb, repo.TableName(), logger); err != nil {
				return nil, nil, err
			}
		}
		logger.Info("session store ready", zap.String("store", store), zap.String("table", repo.TableName()))
		return repo, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown STATE_STORE %q", store)
	}
}

func corsHandler() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	})
}

func setMiddlewares(logger *zap.Logger) {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
