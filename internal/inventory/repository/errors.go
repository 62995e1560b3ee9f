package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrNoAvailableUnits signals the conditional decrement matched no
	// document: every unit of the item is already on loan.
	ErrNoAvailableUnits = errors.New("no available units")
)
