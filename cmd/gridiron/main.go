package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dynastyhq/gridiron/internal/api/rest"
	"github.com/dynastyhq/gridiron/internal/api/websocket"
	"github.com/dynastyhq/gridiron/internal/cache"
	"github.com/dynastyhq/gridiron/internal/config"
	"github.com/dynastyhq/gridiron/internal/publisher"
	"github.com/dynastyhq/gridiron/internal/refresh"
	"github.com/dynastyhq/gridiron/internal/service"
	"github.com/dynastyhq/gridiron/internal/store"
)

const (
	serviceName    = "gridiron"
	serviceVersion = "1.0.0"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	log.Printf("Starting %s v%s - Dynasty Stat Tracking Service", serviceName, serviceVersion)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := store.NewDatabase(cfg.Database.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to database")

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// Initialize Redis with retry logic
	var redisCache *cache.RedisCache
	maxRetries := 30
	retryDelay := 2 * time.Second

	log.Println("Connecting to Redis...")
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(cfg.Redis.URL)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		} else {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
		}
	}
	defer redisCache.Close()

	log.Println("✓ Connected to Redis")

	streamPublisher := publisher.NewRedisStreamPublisher(redisCache.Client())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Background leaderboard refresher
	leaderboards := service.NewLeaderboardService(db, redisCache, streamPublisher, cfg.Leaderboard)
	refresher := refresh.NewRefresher(db, leaderboards, cfg.Leaderboard.RefreshInterval)
	refresher.Start(ctx)

	// WebSocket hub, stream consumer, and server
	hub := websocket.NewHub()
	go hub.Run(ctx)

	consumer := websocket.NewStreamConsumer(redisCache.Client(), hub, serviceName)
	go consumer.Start(ctx)

	wsServer := websocket.NewServer(cfg.Server.WSPort, hub)
	go func() {
		log.Printf("Starting WebSocket server on port %d", cfg.Server.WSPort)
		if err := wsServer.Start(ctx); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	// REST API server
	restServer := rest.NewServer(cfg.Server.RESTPort, db, redisCache, streamPublisher, cfg.Leaderboard)
	go func() {
		log.Printf("Starting REST API server on port %d", cfg.Server.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ %s v%s started successfully", serviceName, serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%d", cfg.Server.RESTPort)
	log.Printf("  WebSocket: ws://0.0.0.0:%d", cfg.Server.WSPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down gracefully...")

	cancel()
	refresher.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}

	log.Printf("%s stopped", serviceName)
}
