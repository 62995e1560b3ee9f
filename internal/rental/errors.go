package rental

import (
	"errors"
	"fmt"
)

var (
	ErrRentalNotFound  = errors.New("rental not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item is not available for rental")
	ErrInvalidStatus   = errors.New("invalid rental status")
	ErrInvalidEndDate  = errors.New("end date must be in the future")
)

// CapacityError reports a status change that would hold a unit of an
// item with no availability left.
type CapacityError struct {
	ItemName string
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot change rental status: item %q has no available quantity", e.ItemName)
}
