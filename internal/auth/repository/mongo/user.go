package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	repo "disc-rental/internal/auth/repository"
	"disc-rental/internal/model"
)

// GetOneUser retrieves a single User by id or email.
// Returns zero-value User (empty ID) when not found — not an error.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	filter := bson.M{}
	if opt.ID != "" {
		oid, err := primitive.ObjectIDFromHex(opt.ID)
		if err != nil {
			return model.User{}, nil
		}
		filter["_id"] = oid
	}
	if opt.Email != "" {
		filter["email"] = opt.Email
	}

	var user model.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/mongo.GetOneUser: %v", err)
		return model.User{}, repo.ErrFailedToGet
	}
	return user, nil
}

// UpsertUser creates or replaces the account behind an email.
func (r *implRepository) UpsertUser(ctx context.Context, opt repo.UpsertUserOptions) (model.User, error) {
	now := time.Now().UTC()

	var user model.User
	err := r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"email": opt.Email},
		bson.M{
			"$set": bson.M{
				"password":   opt.PasswordHash,
				"role":       opt.Role,
				"updated_at": now,
			},
			"$setOnInsert": bson.M{
				"email":      opt.Email,
				"created_at": now,
			},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		r.l.Errorf(ctx, "auth/repository/mongo.UpsertUser: %v", err)
		return model.User{}, repo.ErrFailedToUpsert
	}
	return user, nil
}
