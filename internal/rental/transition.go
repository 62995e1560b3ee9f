package rental

import (
	"time"

	"disc-rental/internal/model"
)

// LedgerEffect is the item-availability side effect of a status change.
type LedgerEffect int

const (
	EffectNone LedgerEffect = iota
	EffectDecrement
	EffectIncrement
)

// TransitionEffect returns the ledger effect of moving a rental from
// one status to another. Active and overdue are the same ledger state
// (one unit held), so relabeling between them has no effect; only
// crossing the returned boundary moves a unit.
func TransitionEffect(from, to model.RentalStatus) LedgerEffect {
	if from == to {
		return EffectNone
	}

	fromHolds := from == model.RentalActive || from == model.RentalOverdue
	toHolds := to == model.RentalActive || to == model.RentalOverdue

	switch {
	case fromHolds && to == model.RentalReturned:
		return EffectIncrement
	case from == model.RentalReturned && toHolds:
		return EffectDecrement
	default:
		return EffectNone
	}
}

// EffectiveStatus relabels an active rental as overdue once its due
// date has passed. Overdue is computed at read/save time; there is no
// background sweep.
func EffectiveStatus(r model.Rental, now time.Time) model.RentalStatus {
	if r.Status == model.RentalActive && r.ReturnedAt == nil && r.EndDate.Before(now) {
		return model.RentalOverdue
	}
	return r.Status
}
