package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"disc-rental/internal/inventory"
	"disc-rental/internal/model"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		available int
		want      model.ItemStatus
	}{
		{"no units owned", 0, 0, model.ItemUnavailable},
		{"all units on loan", 3, 0, model.ItemRented},
		{"units available", 3, 1, model.ItemAvailable},
		{"nothing on loan", 5, 5, model.ItemAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, inventory.DeriveStatus(tt.quantity, tt.available))
		})
	}
}

func TestApplyQuantityChange(t *testing.T) {
	tests := []struct {
		name          string
		quantity      int
		available     int
		newQuantity   int
		wantAvailable int
		wantStatus    model.ItemStatus
	}{
		{"grow adds available units", 3, 1, 5, 3, model.ItemAvailable},
		{"shrink removes available first", 5, 3, 4, 2, model.ItemAvailable},
		{"shrink below rented count clamps to zero", 5, 1, 2, 0, model.ItemRented},
		{"shrink to zero", 3, 3, 0, 0, model.ItemUnavailable},
		{"no change keeps availability", 3, 2, 3, 2, model.ItemAvailable},
		{"grow from fully rented", 2, 0, 4, 2, model.ItemAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.Item{Quantity: tt.quantity, AvailableQuantity: tt.available}
			gotAvailable, gotStatus := inventory.ApplyQuantityChange(item, tt.newQuantity)
			require.Equal(t, tt.wantAvailable, gotAvailable)
			require.Equal(t, tt.wantStatus, gotStatus)
			require.GreaterOrEqual(t, gotAvailable, 0)
			require.LessOrEqual(t, gotAvailable, tt.newQuantity)
		})
	}
}
