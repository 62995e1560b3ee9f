package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category is the platform a disc belongs to.
type Category string

const (
	CategoryPS4  Category = "PS4"
	CategoryPS5  Category = "PS5"
	CategoryXbox Category = "XBOX"
	CategoryPC   Category = "PC"
)

var validCategories = map[Category]bool{
	CategoryPS4:  true,
	CategoryPS5:  true,
	CategoryXbox: true,
	CategoryPC:   true,
}

// IsValidCategory reports whether s is one of the four platform categories.
func IsValidCategory(s string) bool {
	return validCategories[Category(s)]
}

// ItemStatus is derived from quantity fields, never set independently.
type ItemStatus string

const (
	ItemAvailable   ItemStatus = "available"
	ItemRented      ItemStatus = "rented"
	ItemUnavailable ItemStatus = "unavailable"
)

// Item is a rentable disc title with a total and available unit count.
// Invariant: 0 <= AvailableQuantity <= Quantity, and Status matches
// the derived-status rule for (Quantity, AvailableQuantity).
type Item struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Category          Category           `bson:"category" json:"category"`
	Quantity          int                `bson:"quantity" json:"quantity"`
	AvailableQuantity int                `bson:"available_quantity" json:"available_quantity"`
	Status            ItemStatus         `bson:"status" json:"status"`
	PricePerDay       float64            `bson:"price_per_day" json:"price_per_day"`
	Image             string             `bson:"image,omitempty" json:"image,omitempty"`
	Description       string             `bson:"description,omitempty" json:"description,omitempty"`
	Deleted           bool               `bson:"deleted" json:"-"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
