package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"disc-rental/config"
	"disc-rental/internal/auth/repository"
	authRepo "disc-rental/internal/auth/repository/mongo"
	"disc-rental/pkg/hash"
	"disc-rental/pkg/log"
	pkgMongo "disc-rental/pkg/mongo"
)

// Bootstraps (or resets) the admin account. Re-running with the same
// email replaces the password, so it doubles as a password reset tool.
func main() {
	if len(os.Args) < 3 {
		fmt.Println("Usage: go run scripts/create-admin/main.go <email> <password>")
		os.Exit(1)
	}
	email, password := strings.ToLower(strings.TrimSpace(os.Args[1])), os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	client, err := pkgMongo.Connect(ctx, pkgMongo.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		logger.Fatalf(ctx, "Failed to hash password: %v", err)
	}

	users := authRepo.New(client, logger)
	user, err := users.UpsertUser(ctx, repository.UpsertUserOptions{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         "admin",
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to upsert admin: %v", err)
	}

	logger.Infof(ctx, "Admin account ready: %s (id %s)", user.Email, user.ID.Hex())
}
