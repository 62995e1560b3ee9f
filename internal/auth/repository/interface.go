package repository

import (
	"context"

	"disc-rental/internal/model"
)

// Repository is the composed interface for the auth data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	// GetOneUser returns the zero-value User (empty ID) when not found.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	// UpsertUser creates the user or replaces its password/role by
	// email. Used by the admin bootstrap script.
	UpsertUser(ctx context.Context, opt UpsertUserOptions) (model.User, error)
}

type GetOneUserOptions struct {
	ID    string
	Email string
}

type UpsertUserOptions struct {
	Email        string
	PasswordHash string
	Role         string
}
