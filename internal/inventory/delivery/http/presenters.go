package http

import (
	"time"

	"disc-rental/internal/inventory"
	"disc-rental/internal/model"
)

// --- Request DTOs ---

type createReq struct {
	Name        string  `json:"name"          binding:"required,min=1,max=255"`
	Category    string  `json:"category"      binding:"required"`
	Quantity    int     `json:"quantity"      binding:"min=0"`
	PricePerDay float64 `json:"price_per_day" binding:"min=0"`
	Image       string  `json:"image"         binding:"omitempty,max=2048"`
	Description string  `json:"description"   binding:"omitempty,max=2000"`
}

func (r createReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		Name:        r.Name,
		Category:    r.Category,
		Quantity:    r.Quantity,
		PricePerDay: r.PricePerDay,
		Image:       r.Image,
		Description: r.Description,
	}
}

// ---

// updateReq is a partial patch; absent fields stay untouched. Status
// and availability are not accepted — they are derived server-side.
type updateReq struct {
	ID          string   `json:"-"` // populated from URI param
	Name        *string  `json:"name"          binding:"omitempty,min=1,max=255"`
	Category    *string  `json:"category"      binding:"omitempty"`
	Quantity    *int     `json:"quantity"      binding:"omitempty,min=0"`
	PricePerDay *float64 `json:"price_per_day" binding:"omitempty,min=0"`
	Image       *string  `json:"image"         binding:"omitempty,max=2048"`
	Description *string  `json:"description"   binding:"omitempty,max=2000"`
}

func (r updateReq) toInput() inventory.UpdateItemInput {
	return inventory.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Quantity:    r.Quantity,
		PricePerDay: r.PricePerDay,
		Image:       r.Image,
		Description: r.Description,
	}
}

// ---

type bulkDeleteReq struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

func (r bulkDeleteReq) toInput() inventory.BulkDeleteItemsInput {
	return inventory.BulkDeleteItemsInput{IDs: r.IDs}
}

// --- Response DTOs ---

type itemResp struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Quantity          int       `json:"quantity"`
	AvailableQuantity int       `json:"available_quantity"`
	Status            string    `json:"status"`
	PricePerDay       float64   `json:"price_per_day"`
	Image             string    `json:"image,omitempty"`
	Description       string    `json:"description,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func newItemResp(item model.Item) itemResp {
	return itemResp{
		ID:                item.ID.Hex(),
		Name:              item.Name,
		Category:          string(item.Category),
		Quantity:          item.Quantity,
		AvailableQuantity: item.AvailableQuantity,
		Status:            string(item.Status),
		PricePerDay:       item.PricePerDay,
		Image:             item.Image,
		Description:       item.Description,
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}

type annotatedItemResp struct {
	itemResp
	IsDeletable bool `json:"is_deletable"`
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out inventory.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items []annotatedItemResp `json:"items"`
	Total int                 `json:"total"`
}

func (h *handler) newListResp(out inventory.ListItemsOutput) listResp {
	items := make([]annotatedItemResp, len(out.Items))
	for i, item := range out.Items {
		items[i] = annotatedItemResp{
			itemResp:    newItemResp(item.Item),
			IsDeletable: item.IsDeletable,
		}
	}
	return listResp{Items: items, Total: len(items)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out inventory.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type skippedItemResp struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type bulkDeleteResp struct {
	DeletedIDs   []string          `json:"deleted_ids"`
	Skipped      []skippedItemResp `json:"skipped"`
	DeletedCount int               `json:"deleted_count"`
	SkippedCount int               `json:"skipped_count"`
}

func (h *handler) newBulkDeleteResp(out inventory.BulkDeleteItemsOutput) bulkDeleteResp {
	skipped := make([]skippedItemResp, len(out.SkippedItems))
	for i, s := range out.SkippedItems {
		skipped[i] = skippedItemResp{ID: s.ID, Reason: s.Reason}
	}
	return bulkDeleteResp{
		DeletedIDs:   out.DeletedIDs,
		Skipped:      skipped,
		DeletedCount: out.DeletedCount,
		SkippedCount: out.SkippedCount,
	}
}

type uploadImageResp struct {
	URL string `json:"url"`
}
