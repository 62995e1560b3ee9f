package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"disc-rental/internal/inventory/repository"
	"disc-rental/pkg/log"
	pkgMongo "disc-rental/pkg/mongo"
)

const collectionItems = "items"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a new MongoDB-backed Repository for the inventory domain.
func New(client *pkgMongo.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("inventory/repository/mongo: client is required")
	}
	return &implRepository{coll: client.Collection(collectionItems), l: l}
}
