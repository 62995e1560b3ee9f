package repository

import "disc-rental/internal/model"

// CreateItemOptions holds parameters for inserting a new Item.
// Availability and status arrive pre-derived from the use case.
type CreateItemOptions struct {
	Name              string
	Category          model.Category
	Quantity          int
	AvailableQuantity int
	Status            model.ItemStatus
	PricePerDay       float64
	Image             string
	Description       string
}

// GetOneItemOptions holds filter parameters for fetching a single Item.
// All non-empty fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID   string
	Name string
	// IncludeDeleted widens the lookup to soft-deleted items.
	IncludeDeleted bool
}

// ListItemsOptions holds filter parameters for listing Items.
// Soft-deleted items are always excluded.
type ListItemsOptions struct {
	IDs     []string
	OrderBy string
}

// UpdateItemOptions holds the full replacement field set for an Item
// update. The use case resolves partial patches against the current
// document before calling the repository.
type UpdateItemOptions struct {
	ID                string
	Name              string
	Category          model.Category
	Quantity          int
	AvailableQuantity int
	Status            model.ItemStatus
	PricePerDay       float64
	Image             string
	Description       string
}
