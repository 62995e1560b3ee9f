package usecase

import (
	"context"
	"errors"
	"time"

	invRepo "disc-rental/internal/inventory/repository"
	"disc-rental/internal/model"
	"disc-rental/internal/rental"
	"disc-rental/internal/rental/repository"
)

// Update edits a rental. A status change across the returned boundary
// moves one unit of the item; re-opening a returned rental fails with
// CapacityError when no unit is free. Active/overdue relabels and
// repeated saves of the same status never touch the ledger.
func (uc *implUseCase) Update(ctx context.Context, input rental.UpdateRentalInput) (rental.JoinedRental, error) {
	existing, err := uc.repo.GetOneRental(ctx, repository.GetOneRentalOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.Update.GetOneRental: %v", err)
		return rental.JoinedRental{}, err
	}
	if existing.ID.IsZero() {
		return rental.JoinedRental{}, rental.ErrRentalNotFound
	}

	now := time.Now().UTC()
	current := rental.EffectiveStatus(existing, now)

	opt := repository.UpdateRentalOptions{
		ID:          input.ID,
		RenterName:  existing.RenterName,
		PhoneNumber: existing.PhoneNumber,
		EndDate:     existing.EndDate,
		ReturnedAt:  existing.ReturnedAt,
		Status:      current,
	}
	if input.RenterName != nil {
		opt.RenterName = *input.RenterName
	}
	if input.PhoneNumber != nil {
		opt.PhoneNumber = *input.PhoneNumber
	}
	if input.EndDate != nil {
		opt.EndDate = *input.EndDate
	}

	if input.Status != nil {
		if !model.IsValidRentalStatus(*input.Status) {
			return rental.JoinedRental{}, rental.ErrInvalidStatus
		}
		next := model.RentalStatus(*input.Status)

		switch rental.TransitionEffect(current, next) {
		case rental.EffectIncrement:
			item, err := uc.items.IncrementAvailability(ctx, existing.ItemID.Hex())
			if err != nil {
				uc.l.Errorf(ctx, "rental/usecase.Update.IncrementAvailability: %v", err)
				return rental.JoinedRental{}, err
			}
			uc.setItemStatus(ctx, item)
		case rental.EffectDecrement:
			item, err := uc.items.DecrementAvailability(ctx, existing.ItemID.Hex())
			if err != nil {
				if errors.Is(err, invRepo.ErrNoAvailableUnits) {
					return rental.JoinedRental{}, uc.capacityError(ctx, existing.ItemID.Hex())
				}
				uc.l.Errorf(ctx, "rental/usecase.Update.DecrementAvailability: %v", err)
				return rental.JoinedRental{}, err
			}
			uc.setItemStatus(ctx, item)
		}

		opt.Status = next
		if next == model.RentalReturned {
			if existing.ReturnedAt == nil {
				opt.ReturnedAt = &now
			}
		} else {
			opt.ReturnedAt = nil
		}
	}

	// Relabel against the possibly edited due date before persisting.
	opt.Status = rental.EffectiveStatus(model.Rental{
		Status:     opt.Status,
		EndDate:    opt.EndDate,
		ReturnedAt: opt.ReturnedAt,
	}, now)

	updated, err := uc.repo.UpdateRental(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.Update.UpdateRental: %v", err)
		return rental.JoinedRental{}, err
	}
	if updated.ID.IsZero() {
		return rental.JoinedRental{}, rental.ErrRentalNotFound
	}

	names, err := uc.items.ItemNames(ctx, []string{updated.ItemID.Hex()})
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.Update.ItemNames: %v", err)
		names = map[string]string{}
	}
	return rental.JoinedRental{Rental: updated, ItemName: names[updated.ItemID.Hex()]}, nil
}

func (uc *implUseCase) setItemStatus(ctx context.Context, item model.Item) {
	if err := uc.items.SetItemStatus(ctx, item.ID.Hex(), uc.deriveItemStatus(item)); err != nil {
		uc.l.Errorf(ctx, "rental/usecase.setItemStatus: item %s: %v", item.ID.Hex(), err)
	}
}

// capacityError names the item in the rejection so the caller can say
// which title ran out.
func (uc *implUseCase) capacityError(ctx context.Context, itemID string) error {
	item, err := uc.items.GetItem(ctx, itemID)
	if err != nil || item.ID.IsZero() {
		return &rental.CapacityError{ItemName: itemID}
	}
	return &rental.CapacityError{ItemName: item.Name}
}
