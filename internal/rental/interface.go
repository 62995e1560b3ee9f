package rental

import (
	"context"

	"disc-rental/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateRentalInput) (JoinedRental, error)
	List(ctx context.Context) ([]JoinedRental, error)
	Update(ctx context.Context, input UpdateRentalInput) (JoinedRental, error)
	BulkDelete(ctx context.Context, input BulkDeleteRentalsInput) (BulkDeleteRentalsOutput, error)
}

// ItemLedger is the slice of the inventory store the rental domain
// depends on: fresh reads plus availability adjustments. The inventory
// repository satisfies it as-is.
type ItemLedger interface {
	// GetItem returns the zero-value Item (empty ID) when not found.
	GetItem(ctx context.Context, id string) (model.Item, error)
	ItemNames(ctx context.Context, ids []string) (map[string]string, error)
	DecrementAvailability(ctx context.Context, id string) (model.Item, error)
	IncrementAvailability(ctx context.Context, id string) (model.Item, error)
	SetItemStatus(ctx context.Context, id string, status model.ItemStatus) error
}
