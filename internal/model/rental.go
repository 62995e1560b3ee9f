package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RentalStatus is the lifecycle state of a loan.
// "overdue" is a refinement of "active": same ledger effect,
// relabeled at read/save time once the due date has passed.
type RentalStatus string

const (
	RentalActive   RentalStatus = "active"
	RentalReturned RentalStatus = "returned"
	RentalOverdue  RentalStatus = "overdue"
)

var validRentalStatuses = map[RentalStatus]bool{
	RentalActive:   true,
	RentalReturned: true,
	RentalOverdue:  true,
}

// IsValidRentalStatus reports whether s is a known rental status.
func IsValidRentalStatus(s string) bool {
	return validRentalStatuses[RentalStatus(s)]
}

// Rental is a loan of exactly one unit of one Item.
type Rental struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemID      primitive.ObjectID `bson:"item_id" json:"item_id"`
	RenterName  string             `bson:"renter_name" json:"renter_name"`
	PhoneNumber string             `bson:"phone_number" json:"phone_number"`
	RentedAt    time.Time          `bson:"rented_at" json:"rented_at"`
	EndDate     time.Time          `bson:"end_date" json:"end_date"`
	ReturnedAt  *time.Time         `bson:"returned_at,omitempty" json:"returned_at,omitempty"`
	Status      RentalStatus       `bson:"status" json:"status"`
	Deleted     bool               `bson:"deleted" json:"-"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

// Outstanding reports whether the rental still holds an item unit.
func (r Rental) Outstanding() bool {
	return r.Status == RentalActive || r.Status == RentalOverdue
}
