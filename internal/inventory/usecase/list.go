package usecase

import (
	"context"

	"disc-rental/internal/inventory"
	repo "disc-rental/internal/inventory/repository"
)

// List returns all non-deleted Items annotated with the deletability
// flag, so delete buttons can be disabled without the UI re-deriving
// the eligibility rule.
func (uc *implUseCase) List(ctx context.Context) (inventory.ListItemsOutput, error) {
	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ID.Hex()
	}

	outstanding, err := uc.rentals.CountOutstanding(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List CountOutstanding: %v", err)
		return inventory.ListItemsOutput{}, err
	}

	annotated := make([]inventory.AnnotatedItem, len(items))
	for i, item := range items {
		annotated[i] = inventory.AnnotatedItem{
			Item:        item,
			IsDeletable: outstanding[item.ID.Hex()] == 0,
		}
	}

	return inventory.ListItemsOutput{Items: annotated}, nil
}
