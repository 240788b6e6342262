// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jewelbellery/storefront-backend/internal/config"
	"github.com/jewelbellery/storefront-backend/internal/domain/catalog"
	"github.com/jewelbellery/storefront-backend/internal/domain/session"
	"github.com/jewelbellery/storefront-backend/internal/infrastructure/database/redis"
	"github.com/jewelbellery/storefront-backend/internal/interfaces/http"
	"github.com/jewelbellery/storefront-backend/internal/pkg/logger"
	"github.com/jewelbellery/storefront-backend/internal/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.New(cfg)
	appLogger.Infof("🚀 Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Build the session store
	var store storage.Store
	var redisClient *goredis.Client

	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		conn, err := redis.NewConnection(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer conn.Close()

		if err := conn.Health(); err != nil {
			log.Fatalf("Redis health check failed: %v", err)
		}

		redisClient = conn.GetClient()
		store = storage.NewRedisStore(redisClient, cfg.Session.TTL)
	case config.StoreBackendMemory:
		appLogger.Warn("Using in-memory session store, state will not survive restarts")
		store = storage.NewMemoryStore()
	}

	// Static product catalog and session state
	cat := catalog.Default()
	sessions := session.NewManager(store, appLogger)

	appLogger.Info("✅ All systems operational!")

	// Create and start HTTP server
	server := http.NewServer(cfg, store, cat, sessions, redisClient, appLogger)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("👋 Shutting down gracefully...")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		appLogger.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	appLogger.Info("✅ Server shutdown completed")
}
