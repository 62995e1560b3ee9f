package mongo

import (
	"go.mongodb.org/mongo-driver/mongo"

	"disc-rental/internal/rental/repository"
	"disc-rental/pkg/log"
	pkgMongo "disc-rental/pkg/mongo"
)

const collectionRentals = "rentals"

type implRepository struct {
	coll *mongo.Collection
	l    log.Logger
}

// New creates a new MongoDB-backed Repository for the rental domain.
func New(client *pkgMongo.Client, l log.Logger) repository.Repository {
	if client == nil {
		panic("rental/repository/mongo: client is required")
	}
	return &implRepository{coll: client.Collection(collectionRentals), l: l}
}
