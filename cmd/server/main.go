package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/cherry-12345/naksh-jewels/config"
	"github.com/cherry-12345/naksh-jewels/internal/delivery"
	"github.com/cherry-12345/naksh-jewels/internal/domain"
	"github.com/cherry-12345/naksh-jewels/internal/repository"
	"github.com/cherry-12345/naksh-jewels/internal/usecase"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig(logger)
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', using default 'info'", cfg.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Starting Naksh Jewels API...")

	// Repository layer
	catalogRepo := repository.NewStaticCatalogRepository(logger)
	cartStore, cleanup, err := buildCartStore(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize cart store: %v", err)
	}
	defer cleanup()

	// Usecase layer
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo, logger)
	cartUseCase := usecase.NewCartUseCase(cartStore, catalogRepo, logger)

	// Delivery layer
	productHandler := delivery.NewProductHandler(catalogUseCase, logger)
	cartHandler := delivery.NewCartHandler(cartUseCase, logger)
	router := delivery.NewRouter(cfg, logger, productHandler, cartHandler)

	logger.Infof("Listening on port %s (env: %s)", cfg.Port, cfg.Env)
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}

// buildCartStore selects the cart backend. Memory is the default; redis is
// opt-in and keeps the same interface contract.
func buildCartStore(cfg *config.Config, logger *logrus.Logger) (domain.CartStore, func(), error) {
	switch cfg.CartBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		logger.Infof("Cart store: redis backend at %s", cfg.RedisAddr)
		return repository.NewRedisCartStore(client, logger), func() {
			if err := client.Close(); err != nil {
				logger.Errorf("Error closing redis connection: %v", err)
			}
		}, nil
	default:
		logger.Info("Cart store: in-memory backend")
		return repository.NewMemoryCartStore(logger), func() {}, nil
	}
}
