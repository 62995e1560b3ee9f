package usecase

import (
	"disc-rental/internal/inventory"
	"disc-rental/internal/inventory/repository"
	"disc-rental/pkg/log"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo    repository.Repository
	rentals inventory.RentalCounter
	l       log.Logger
}

// New creates a new inventory UseCase implementation.
func New(repo repository.Repository, rentals inventory.RentalCounter, l log.Logger) inventory.UseCase {
	return &implUseCase{
		repo:    repo,
		rentals: rentals,
		l:       l,
	}
}
