package inventory

import "disc-rental/internal/model"

// DeriveStatus computes an item's status from its quantity fields.
// This function is the only way item status is ever decided: every
// write path derives and persists the result, no path sets status
// on its own.
func DeriveStatus(quantity, availableQuantity int) model.ItemStatus {
	switch {
	case quantity == 0:
		return model.ItemUnavailable
	case availableQuantity == 0:
		return model.ItemRented
	default:
		return model.ItemAvailable
	}
}

// ApplyQuantityChange computes the availability and status that follow
// from editing an item's total quantity. Added units are assumed
// available, so availability moves by the same delta; shrinking the
// total never borrows from units already on loan — availability is
// clamped to [0, newQuantity].
func ApplyQuantityChange(item model.Item, newQuantity int) (int, model.ItemStatus) {
	delta := newQuantity - item.Quantity
	available := item.AvailableQuantity + delta

	if available < 0 {
		available = 0
	}
	if available > newQuantity {
		available = newQuantity
	}

	return available, DeriveStatus(newQuantity, available)
}
