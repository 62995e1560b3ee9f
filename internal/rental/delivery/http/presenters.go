package http

import (
	"time"

	"disc-rental/internal/rental"
)

// --- Request DTOs ---

type createReq struct {
	ItemID      string    `json:"item_id"      binding:"required"`
	RenterName  string    `json:"renter_name"  binding:"required,min=1,max=255"`
	PhoneNumber string    `json:"phone_number" binding:"required,min=6,max=20"`
	EndDate     time.Time `json:"end_date"     binding:"required"`
}

func (r createReq) toInput() rental.CreateRentalInput {
	return rental.CreateRentalInput{
		ItemID:      r.ItemID,
		RenterName:  r.RenterName,
		PhoneNumber: r.PhoneNumber,
		EndDate:     r.EndDate,
	}
}

// ---

// updateReq is a partial patch; absent fields stay untouched.
type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	RenterName  *string    `json:"renter_name"  binding:"omitempty,min=1,max=255"`
	PhoneNumber *string    `json:"phone_number" binding:"omitempty,min=6,max=20"`
	EndDate     *time.Time `json:"end_date"     binding:"omitempty"`
	Status      *string    `json:"status"       binding:"omitempty,oneof=active returned overdue"`
}

func (r updateReq) toInput() rental.UpdateRentalInput {
	return rental.UpdateRentalInput{
		ID:          r.ID,
		RenterName:  r.RenterName,
		PhoneNumber: r.PhoneNumber,
		EndDate:     r.EndDate,
		Status:      r.Status,
	}
}

// ---

type bulkDeleteReq struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (r bulkDeleteReq) toInput() rental.BulkDeleteRentalsInput {
	return rental.BulkDeleteRentalsInput{IDs: r.IDs}
}

// --- Response DTOs ---

type rentalResp struct {
	ID          string     `json:"id"`
	ItemID      string     `json:"item_id"`
	ItemName    string     `json:"item_name"`
	RenterName  string     `json:"renter_name"`
	PhoneNumber string     `json:"phone_number"`
	RentedAt    time.Time  `json:"rented_at"`
	EndDate     time.Time  `json:"end_date"`
	ReturnedAt  *time.Time `json:"returned_at,omitempty"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newRentalResp(r rental.JoinedRental) rentalResp {
	return rentalResp{
		ID:          r.ID.Hex(),
		ItemID:      r.ItemID.Hex(),
		ItemName:    r.ItemName,
		RenterName:  r.RenterName,
		PhoneNumber: r.PhoneNumber,
		RentedAt:    r.RentedAt,
		EndDate:     r.EndDate,
		ReturnedAt:  r.ReturnedAt,
		Status:      string(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type createResp struct {
	Rental rentalResp `json:"rental"`
}

func (h *handler) newCreateResp(out rental.JoinedRental) createResp {
	return createResp{Rental: newRentalResp(out)}
}

type listResp struct {
	Rentals []rentalResp `json:"rentals"`
	Total   int          `json:"total"`
}

func (h *handler) newListResp(out []rental.JoinedRental) listResp {
	rentals := make([]rentalResp, len(out))
	for i, r := range out {
		rentals[i] = newRentalResp(r)
	}
	return listResp{Rentals: rentals, Total: len(rentals)}
}

type updateResp struct {
	Rental rentalResp `json:"rental"`
}

func (h *handler) newUpdateResp(out rental.JoinedRental) updateResp {
	return updateResp{Rental: newRentalResp(out)}
}

type bulkDeleteResp struct {
	DeletedCount int `json:"deleted_count"`
	MatchedCount int `json:"matched_count"`
}

func (h *handler) newBulkDeleteResp(out rental.BulkDeleteRentalsOutput) bulkDeleteResp {
	return bulkDeleteResp{
		DeletedCount: out.DeletedCount,
		MatchedCount: out.MatchedCount,
	}
}
