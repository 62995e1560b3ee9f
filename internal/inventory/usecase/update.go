package usecase

import (
	"context"

	"disc-rental/internal/inventory"
	repo "disc-rental/internal/inventory/repository"
	"disc-rental/internal/model"
)

// Update applies a partial patch to an Item. When the patch touches
// quantity, availability and status are recomputed by the ledger and
// folded into the same write — a quantity edit can never land without
// its derived fields.
func (uc *implUseCase) Update(ctx context.Context, input inventory.UpdateItemInput) (inventory.UpdateItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	if existing.ID.IsZero() {
		return inventory.UpdateItemOutput{}, inventory.ErrItemNotFound
	}

	opt := repo.UpdateItemOptions{
		ID:                input.ID,
		Name:              existing.Name,
		Category:          existing.Category,
		Quantity:          existing.Quantity,
		AvailableQuantity: existing.AvailableQuantity,
		Status:            existing.Status,
		PricePerDay:       existing.PricePerDay,
		Image:             existing.Image,
		Description:       existing.Description,
	}

	if input.Name != nil {
		opt.Name = *input.Name
	}
	if input.Category != nil {
		if !model.IsValidCategory(*input.Category) {
			return inventory.UpdateItemOutput{}, inventory.ErrInvalidCategory
		}
		opt.Category = model.Category(*input.Category)
	}
	if input.PricePerDay != nil {
		if *input.PricePerDay < 0 {
			return inventory.UpdateItemOutput{}, inventory.ErrInvalidPrice
		}
		opt.PricePerDay = *input.PricePerDay
	}
	if input.Image != nil {
		opt.Image = *input.Image
	}
	if input.Description != nil {
		opt.Description = *input.Description
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return inventory.UpdateItemOutput{}, inventory.ErrInvalidQuantity
		}
		opt.Quantity = *input.Quantity
		opt.AvailableQuantity, opt.Status = inventory.ApplyQuantityChange(existing, *input.Quantity)
	}

	item, err := uc.repo.UpdateItem(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		return inventory.UpdateItemOutput{}, err
	}
	if item.ID.IsZero() {
		return inventory.UpdateItemOutput{}, inventory.ErrItemNotFound
	}

	return inventory.UpdateItemOutput{Item: item}, nil
}
