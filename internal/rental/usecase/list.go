package usecase

import (
	"context"
	"time"

	"disc-rental/internal/rental"
	"disc-rental/internal/rental/repository"
)

// List returns non-deleted rentals newest first, joined with item
// names. Active rentals past due are relabeled overdue in the output
// only; nothing is written back.
func (uc *implUseCase) List(ctx context.Context) ([]rental.JoinedRental, error) {
	rentals, err := uc.repo.ListRentals(ctx, repository.ListRentalsOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.List.ListRentals: %v", err)
		return nil, err
	}

	itemIDs := make([]string, 0, len(rentals))
	for _, r := range rentals {
		itemIDs = append(itemIDs, r.ItemID.Hex())
	}
	names, err := uc.items.ItemNames(ctx, itemIDs)
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.List.ItemNames: %v", err)
		return nil, err
	}

	now := time.Now().UTC()
	out := make([]rental.JoinedRental, 0, len(rentals))
	for _, r := range rentals {
		r.Status = rental.EffectiveStatus(r, now)
		out = append(out, rental.JoinedRental{
			Rental:   r,
			ItemName: names[r.ItemID.Hex()],
		})
	}
	return out, nil
}
