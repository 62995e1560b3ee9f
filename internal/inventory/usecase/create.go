package usecase

import (
	"context"

	"disc-rental/internal/inventory"
	repo "disc-rental/internal/inventory/repository"
	"disc-rental/internal/model"
)

// Create creates a new Item. The server is authoritative on creation:
// availability starts equal to quantity and status is derived — any
// client-supplied status or availability is ignored.
func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateItemInput) (inventory.CreateItemOutput, error) {
	if !model.IsValidCategory(input.Category) {
		return inventory.CreateItemOutput{}, inventory.ErrInvalidCategory
	}
	if input.Quantity < 0 {
		return inventory.CreateItemOutput{}, inventory.ErrInvalidQuantity
	}
	if input.PricePerDay < 0 {
		return inventory.CreateItemOutput{}, inventory.ErrInvalidPrice
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		Name:              input.Name,
		Category:          model.Category(input.Category),
		Quantity:          input.Quantity,
		AvailableQuantity: input.Quantity,
		Status:            inventory.DeriveStatus(input.Quantity, input.Quantity),
		PricePerDay:       input.PricePerDay,
		Image:             input.Image,
		Description:       input.Description,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		return inventory.CreateItemOutput{}, err
	}

	return inventory.CreateItemOutput{Item: item}, nil
}
