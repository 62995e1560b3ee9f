package inventory

import "disc-rental/internal/model"

// --- UseCase Inputs ---

type CreateItemInput struct {
	Name        string
	Category    string
	Quantity    int
	PricePerDay float64
	Image       string
	Description string
}

// UpdateItemInput is a partial patch; nil pointer fields are left
// untouched. Status and availability are never part of the patch —
// they are derived server-side (quantity edits run the ledger).
type UpdateItemInput struct {
	ID          string
	Name        *string
	Category    *string
	Quantity    *int
	PricePerDay *float64
	Image       *string
	Description *string
}

type BulkDeleteItemsInput struct {
	IDs []string
}

// --- UseCase Outputs ---

// AnnotatedItem is an Item plus the deletability flag listings carry,
// so the presentation layer never re-derives the eligibility rule.
type AnnotatedItem struct {
	model.Item
	IsDeletable bool
}

type CreateItemOutput struct {
	Item model.Item
}

type ListItemsOutput struct {
	Items []AnnotatedItem
}

type UpdateItemOutput struct {
	Item model.Item
}

// SkippedItem names a bulk-delete input that was refused, with the reason.
type SkippedItem struct {
	ID     string
	Reason string
}

type BulkDeleteItemsOutput struct {
	DeletedIDs   []string
	SkippedItems []SkippedItem
	DeletedCount int
	SkippedCount int
}
