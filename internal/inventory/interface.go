package inventory

import "context"

// UseCase is the inventory coordinator surface exposed to delivery.
//
//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateItemInput) (CreateItemOutput, error)
	List(ctx context.Context) (ListItemsOutput, error)
	Update(ctx context.Context, input UpdateItemInput) (UpdateItemOutput, error)
	BulkDelete(ctx context.Context, input BulkDeleteItemsInput) (BulkDeleteItemsOutput, error)
}

// RentalCounter reports outstanding (active/overdue, non-deleted)
// rentals per item. Implemented by the rental repository; the
// inventory use case consumes it for the soft-delete eligibility rule.
type RentalCounter interface {
	CountOutstanding(ctx context.Context, itemIDs []string) (map[string]int, error)
}
