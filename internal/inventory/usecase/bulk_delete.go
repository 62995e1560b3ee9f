package usecase

import (
	"context"

	"disc-rental/internal/inventory"
	repo "disc-rental/internal/inventory/repository"
	"disc-rental/internal/model"
)

const (
	skipReasonNotFound    = "item not found"
	skipReasonOutstanding = "item has outstanding rentals"
)

// BulkDelete soft-deletes the deletable subset of the given Items.
// An Item is deletable only when no active or overdue Rental
// references it. Ineligible ids are skipped with a reason, never
// blocking the rest of the batch.
func (uc *implUseCase) BulkDelete(ctx context.Context, input inventory.BulkDeleteItemsInput) (inventory.BulkDeleteItemsOutput, error) {
	out := inventory.BulkDeleteItemsOutput{}
	if len(input.IDs) == 0 {
		return out, nil
	}

	items, err := uc.repo.ListItems(ctx, repo.ListItemsOptions{IDs: input.IDs})
	if err != nil {
		uc.l.Errorf(ctx, "uc.BulkDelete ListItems: %v", err)
		return out, err
	}
	found := make(map[string]model.Item, len(items))
	for _, item := range items {
		found[item.ID.Hex()] = item
	}

	outstanding, err := uc.rentals.CountOutstanding(ctx, input.IDs)
	if err != nil {
		uc.l.Errorf(ctx, "uc.BulkDelete CountOutstanding: %v", err)
		return out, err
	}

	for _, id := range input.IDs {
		if _, ok := found[id]; !ok {
			out.SkippedItems = append(out.SkippedItems, inventory.SkippedItem{ID: id, Reason: skipReasonNotFound})
			continue
		}
		if outstanding[id] > 0 {
			out.SkippedItems = append(out.SkippedItems, inventory.SkippedItem{ID: id, Reason: skipReasonOutstanding})
			continue
		}
		out.DeletedIDs = append(out.DeletedIDs, id)
	}

	if len(out.DeletedIDs) > 0 {
		if _, _, err := uc.repo.SoftDeleteItems(ctx, out.DeletedIDs); err != nil {
			uc.l.Errorf(ctx, "uc.BulkDelete SoftDeleteItems: %v", err)
			return inventory.BulkDeleteItemsOutput{}, err
		}
	}

	out.DeletedCount = len(out.DeletedIDs)
	out.SkippedCount = len(out.SkippedItems)
	return out, nil
}
