package repository

import (
	"context"

	"disc-rental/internal/model"
)

// Repository is the composed interface for the rental data store.
type Repository interface {
	RentalRepository
}

// RentalRepository defines all data access methods for the Rental entity.
type RentalRepository interface {
	CreateRental(ctx context.Context, opt CreateRentalOptions) (model.Rental, error)
	// GetOneRental returns the zero-value Rental (empty ID) when not found.
	GetOneRental(ctx context.Context, opt GetOneRentalOptions) (model.Rental, error)
	ListRentals(ctx context.Context, opt ListRentalsOptions) ([]model.Rental, error)
	UpdateRental(ctx context.Context, opt UpdateRentalOptions) (model.Rental, error)
	// SoftDeleteRentals flags the given rentals deleted and returns
	// matched/modified counts. Already-deleted rentals are not matched
	// again.
	SoftDeleteRentals(ctx context.Context, ids []string) (int64, int64, error)

	// CountOutstanding reports active/overdue non-deleted rentals per
	// item id. Items with no outstanding rentals are absent from the map.
	CountOutstanding(ctx context.Context, itemIDs []string) (map[string]int, error)
}
