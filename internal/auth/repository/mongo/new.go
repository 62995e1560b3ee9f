package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"disc-rental/internal/auth/repository"
	"disc-rental/pkg/log"
	pkgMongo "disc-rental/pkg/mongo"
)

const collectionUsers = "users"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a new MongoDB-backed Repository for the auth domain.
func New(client *pkgMongo.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("auth/repository/mongo: client is required")
	}
	return &implRepository{coll: client.Collection(collectionUsers), l: l}
}
