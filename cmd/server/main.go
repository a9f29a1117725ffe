package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/api"
	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/catalog"
	"github.com/shettigarlolith/LittoralWEB/internal/checkout"
	"github.com/shettigarlolith/LittoralWEB/internal/config"
	"github.com/shettigarlolith/LittoralWEB/internal/repository"
	"github.com/shettigarlolith/LittoralWEB/internal/repository/file"
	"github.com/shettigarlolith/LittoralWEB/internal/repository/postgres"
	"github.com/shettigarlolith/LittoralWEB/internal/repository/redisstore"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting storefront API server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
		zap.String("cart_store", cfg.Cart.Store),
	)

	// Initialize cart store backend
	store, cleanup, err := newCartStore(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize cart store", zap.Error(err))
	}
	defer cleanup()

	// Wire catalog -> cart engine -> checkout manager
	cat := catalog.NewService()
	engine := cart.NewEngine(store, cat, cfg.Cart, logger)
	mgr := checkout.NewManager(engine, cfg.Checkout, logger)

	// Initialize router
	router := api.NewRouter(cfg, cat, engine, mgr, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// newCartStore builds the configured persistence backend. The returned
// cleanup closes any underlying connection.
func newCartStore(cfg *config.Config) (repository.CartStore, func(), error) {
	switch cfg.Cart.Store {
	case config.StoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		return redisstore.NewStore(rdb, cfg.Cart.StorageKey), func() { _ = rdb.Close() }, nil
	case config.StorePostgres:
		db, err := postgres.NewConnection(cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		store, err := postgres.NewStore(db, cfg.Cart.StorageKey)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { _ = db.Close() }, nil
	default:
		return file.NewStore(cfg.Cart.FilePath), func() {}, nil
	}
}
