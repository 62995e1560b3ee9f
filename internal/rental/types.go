package rental

import (
	"time"

	"disc-rental/internal/model"
)

type CreateRentalInput struct {
	ItemID      string
	RenterName  string
	PhoneNumber string
	EndDate     time.Time
}

// UpdateRentalInput carries a partial edit. Nil fields are left as-is.
type UpdateRentalInput struct {
	ID          string
	RenterName  *string
	PhoneNumber *string
	EndDate     *time.Time
	Status      *string
}

type BulkDeleteRentalsInput struct {
	IDs []string
}

// JoinedRental is a rental together with the name of the item it
// refers to, looked up at read time so historical rentals keep a name
// even after the item is soft-deleted.
type JoinedRental struct {
	model.Rental
	ItemName string
}

type BulkDeleteRentalsOutput struct {
	DeletedCount int
	MatchedCount int
}
