package inventory

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	ErrInvalidPrice    = errors.New("price per day must not be negative")
)
