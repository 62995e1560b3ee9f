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

// Create opens a loan of one unit. The availability check and the
// decrement are one conditional update, so two concurrent creates for
// the last unit cannot both succeed.
func (uc *implUseCase) Create(ctx context.Context, input rental.CreateRentalInput) (rental.JoinedRental, error) {
	item, err := uc.items.GetItem(ctx, input.ItemID)
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.Create.GetItem: %v", err)
		return rental.JoinedRental{}, err
	}
	if item.ID.IsZero() || item.Deleted {
		return rental.JoinedRental{}, rental.ErrItemNotFound
	}

	now := time.Now().UTC()
	if !input.EndDate.After(now) {
		return rental.JoinedRental{}, rental.ErrInvalidEndDate
	}

	item, err = uc.items.DecrementAvailability(ctx, input.ItemID)
	if err != nil {
		if errors.Is(err, invRepo.ErrNoAvailableUnits) {
			return rental.JoinedRental{}, rental.ErrItemUnavailable
		}
		uc.l.Errorf(ctx, "rental/usecase.Create.DecrementAvailability: %v", err)
		return rental.JoinedRental{}, err
	}

	if err := uc.items.SetItemStatus(ctx, input.ItemID, uc.deriveItemStatus(item)); err != nil {
		uc.l.Errorf(ctx, "rental/usecase.Create.SetItemStatus: %v", err)
	}

	created, err := uc.repo.CreateRental(ctx, repository.CreateRentalOptions{
		ItemID:      input.ItemID,
		RenterName:  input.RenterName,
		PhoneNumber: input.PhoneNumber,
		RentedAt:    now,
		EndDate:     input.EndDate,
		Status:      model.RentalActive,
	})
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.Create.CreateRental: %v", err)
		uc.compensate(ctx, input.ItemID)
		return rental.JoinedRental{}, err
	}

	return rental.JoinedRental{Rental: created, ItemName: item.Name}, nil
}

// compensate hands the reserved unit back after a failed insert.
func (uc *implUseCase) compensate(ctx context.Context, itemID string) {
	item, err := uc.items.IncrementAvailability(ctx, itemID)
	if err != nil {
		uc.l.Errorf(ctx, "rental/usecase.compensate.IncrementAvailability: item %s: %v", itemID, err)
		return
	}
	if err := uc.items.SetItemStatus(ctx, itemID, uc.deriveItemStatus(item)); err != nil {
		uc.l.Errorf(ctx, "rental/usecase.compensate.SetItemStatus: item %s: %v", itemID, err)
	}
}
