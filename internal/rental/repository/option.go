package repository

import (
	"time"

	"disc-rental/internal/model"
)

type CreateRentalOptions struct {
	ItemID      string
	RenterName  string
	PhoneNumber string
	RentedAt    time.Time
	EndDate     time.Time
	Status      model.RentalStatus
}

type GetOneRentalOptions struct {
	ID             string
	IncludeDeleted bool
}

type ListRentalsOptions struct {
	IDs []string
}

// UpdateRentalOptions carries the full resolved field set; the use
// case owns merging partial input into the current state.
type UpdateRentalOptions struct {
	ID          string
	RenterName  string
	PhoneNumber string
	EndDate     time.Time
	ReturnedAt  *time.Time
	Status      model.RentalStatus
}
