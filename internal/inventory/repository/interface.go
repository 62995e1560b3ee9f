package repository

import (
	"context"

	"disc-rental/internal/model"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
}

// ItemRepository defines all data access methods for the Item entity.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
	// GetOneItem returns the zero-value Item (empty ID) when not found.
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]model.Item, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (model.Item, error)
	// SoftDeleteItems flags the given items deleted and returns
	// matched/modified counts.
	SoftDeleteItems(ctx context.Context, ids []string) (int64, int64, error)

	// GetItem looks an item up by id including soft-deleted ones.
	// Returns the zero-value Item when not found. Used by the rental
	// domain, which may reference historical items.
	GetItem(ctx context.Context, id string) (model.Item, error)
	// ItemNames maps item ids to names, including soft-deleted items.
	ItemNames(ctx context.Context, ids []string) (map[string]string, error)

	// Availability adjustments used by rental transitions.
	// DecrementAvailability is conditional on available_quantity > 0
	// and returns ErrNoAvailableUnits when no unit is free.
	DecrementAvailability(ctx context.Context, id string) (model.Item, error)
	IncrementAvailability(ctx context.Context, id string) (model.Item, error)
	// SetItemStatus persists a status derived by the caller.
	SetItemStatus(ctx context.Context, id string, status model.ItemStatus) error
}
