package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"disc-rental/config"
	_ "disc-rental/docs" // Swagger docs
	"disc-rental/internal/httpserver"
	"disc-rental/pkg/log"
	pkgMongo "disc-rental/pkg/mongo"
	"disc-rental/pkg/objstore"
	"disc-rental/pkg/scope"
)

// @title       Disc Rental API
// @description Rental inventory management for game discs: items, rentals, and operator auth.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Disc Rental API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB
	mongoClient, err := pkgMongo.Connect(ctx, pkgMongo.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to MongoDB: ", err)
		return
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Warnf(ctx, "Mongo disconnect: %v", err)
		}
	}()
	logger.Infof(ctx, "Connected to MongoDB database %q", cfg.Mongo.Database)

	// 4. Session tokens
	jwtManager := scope.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// 5. Object storage (optional)
	var uploader objstore.Uploader = objstore.Disabled{}
	if cfg.Storage.SupabaseURL != "" && cfg.Storage.SupabaseAPIKey != "" {
		uploader = objstore.NewClient(cfg.Storage.SupabaseURL, cfg.Storage.SupabaseAPIKey, cfg.Storage.Bucket, cfg.Storage.Folder)
		logger.Infof(ctx, "Image uploads enabled (bucket %q)", cfg.Storage.Bucket)
	} else {
		logger.Warn(ctx, "Object storage not configured, image uploads disabled")
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Mongo:       mongoClient,
		JWTManager:  jwtManager,
		AuthConfig:  cfg.Auth,
		Uploader:    uploader,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
