package usecase

import (
	"context"

	"disc-rental/internal/rental"
	"disc-rental/internal/rental/repository"
)

// BulkDelete soft-deletes rentals and hands back the unit of every
// outstanding one. Only rentals fetched as non-deleted are
// compensated, so re-deleting an id never frees a second unit. The
// ledger adjustments are per-rental and not atomic with the delete;
// failures are logged and the remaining rentals still processed.
func (uc *implUseCase) BulkDelete(ctx context.Context, input rental.BulkDeleteRentalsInput) (rental.BulkDeleteRentalsOutput, error) {
	rentals, err := uc.repo.ListRentals(ctx, repository.ListRentalsOptions{IDs: input.IDs})
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.BulkDelete.ListRentals: %v", err)
		return rental.BulkDeleteRentalsOutput{}, err
	}

	matched, modified, err := uc.repo.SoftDeleteRentals(ctx, input.IDs)
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.BulkDelete.SoftDeleteRentals: %v", err)
		return rental.BulkDeleteRentalsOutput{}, err
	}

	for _, r := range rentals {
		if !r.Outstanding() {
			continue
		}
		itemID := r.ItemID.Hex()
		item, err := uc.items.IncrementAvailability(ctx, itemID)
		if err != nil {
			uc.l.Errorf(ctx, "rental/usecase.BulkDelete.IncrementAvailability: rental %s item %s: %v", r.ID.Hex(), itemID, err)
			continue
		}
		uc.setItemStatus(ctx, item)
	}

	return rental.BulkDeleteRentalsOutput{
		DeletedCount: int(modified),
		MatchedCount: int(matched),
	}, nil
}
