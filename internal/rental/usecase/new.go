package usecase

import (
	"disc-rental/internal/inventory"
	"disc-rental/internal/model"
	"disc-rental/internal/rental"
	"disc-rental/internal/rental/repository"
	"disc-rental/pkg/log"
)

type implUseCase struct {
	repo  repository.Repository
	items rental.ItemLedger
	l     log.Logger
}

// New creates a new rental UseCase.
func New(repo repository.Repository, items rental.ItemLedger, l log.Logger) rental.UseCase {
	return &implUseCase{
		repo:  repo,
		items: items,
		l:     l,
	}
}

// deriveItemStatus recomputes the item status after an availability
// change; status is derived state and the server always wins.
func (uc *implUseCase) deriveItemStatus(item model.Item) model.ItemStatus {
	return inventory.DeriveStatus(item.Quantity, item.AvailableQuantity)
}
