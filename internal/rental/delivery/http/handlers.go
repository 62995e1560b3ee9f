package http

import (
	"github.com/gin-gonic/gin"

	"disc-rental/pkg/response"
)

// Create godoc
// @Summary     Create a rental
// @Description Opens a loan of one unit. Fails with 409 when every unit of the item is already on loan.
// @Tags        Rentals
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Rental data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Item Not Found"
// @Failure     409 {object} response.Resp "No Available Units"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rentals [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List rentals
// @Description Returns all non-deleted rentals newest first, joined with item names. Rentals past due read as overdue.
// @Tags        Rentals
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rentals [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Update godoc
// @Summary     Update a rental
// @Description Partial update. A status change across the returned boundary moves one unit of the item; re-opening fails with 409 when no unit is free.
// @Tags        Rentals
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Rental ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "No Available Units"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rentals/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// BulkDelete godoc
// @Summary     Bulk delete rentals
// @Description Soft-deletes rentals and hands the unit of every outstanding one back to its item.
// @Tags        Rentals
// @Accept      json
// @Produce     json
// @Param       body body bulkDeleteReq true "Rental ids"
// @Success     200 {object} bulkDeleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rentals/bulk-delete [POST]
func (h *handler) BulkDelete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processBulkDeleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.BulkDelete(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.BulkDelete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newBulkDeleteResp(output))
}
