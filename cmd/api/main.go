// cmd/api/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/your-org/cafe-gateway/internal/config"
	"github.com/your-org/cafe-gateway/internal/domain/menu"
	"github.com/your-org/cafe-gateway/internal/infrastructure/database/redis"
	"github.com/your-org/cafe-gateway/internal/infrastructure/upstream"
	"github.com/your-org/cafe-gateway/internal/interfaces/http"
	"github.com/your-org/cafe-gateway/internal/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg)
	logg.Infof("Starting %s v%s in %s mode", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	// Connect to Redis
	redisClient, err := redis.NewConnection(cfg)
	if err != nil {
		logg.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	if err := redisClient.Health(); err != nil {
		logg.Fatalf("Redis health check failed: %v", err)
	}

	// Upstream catalog/order API client
	api := upstream.NewClient(cfg)

	// Prime the menu lookup snapshot. A failure here is not fatal: the
	// snapshot refreshes on the next successful catalog fetch.
	lookup := menu.NewLookup()
	menuService := menu.NewService(api, lookup, logg)

	primeCtx, cancelPrime := context.WithTimeout(context.Background(), cfg.Upstream.Timeout)
	if err := menuService.Refresh(primeCtx); err != nil {
		logg.Warnf("Could not prime menu catalog: %v", err)
	} else {
		logg.Infof("Menu catalog primed with %d menus", lookup.Len())
	}
	cancelPrime()

	// Create and start HTTP server
	server := http.NewServer(cfg, redisClient.GetClient(), api, lookup, logg)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logg.Fatalf("Failed to start HTTP server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logg.Info("Shutting down gracefully")

	// Give server 30 seconds to shutdown gracefully
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logg.Errorf("Failed to shutdown HTTP server gracefully: %v", err)
	}

	logg.Info("Server shutdown completed")
}
