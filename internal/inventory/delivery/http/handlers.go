package http

import (
	"github.com/gin-gonic/gin"

	"disc-rental/pkg/response"
)

// Create godoc
// @Summary     Create an item
// @Description Creates a new disc title. Availability starts equal to quantity and status is derived server-side.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Item data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/items [POST]
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
// @Summary     List items
// @Description Returns all non-deleted items, each annotated with a deletability flag.
// @Tags        Inventory
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/items [GET]
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
// @Summary     Update an item
// @Description Partial update. Quantity edits adjust availability by the same delta and re-derive status; status itself is never accepted.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Item ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/items/{id} [PATCH]
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
// @Summary     Bulk delete items
// @Description Soft-deletes the deletable subset of the given ids. Items with outstanding rentals are skipped with a reason.
// @Tags        Inventory
// @Accept      json
// @Produce     json
// @Param       body body bulkDeleteReq true "Item ids"
// @Success     200 {object} bulkDeleteResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/items/bulk-delete [POST]
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

// UploadImage godoc
// @Summary     Upload an item image
// @Description Uploads a cover image to the object storage bucket and returns its public URL.
// @Tags        Inventory
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Image file"
// @Success     200 {object} uploadImageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/inventory/items/image [POST]
func (h *handler) UploadImage(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.l.Errorf(ctx, "upload image open: %v", err)
		response.Error(c, err, nil)
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(ctx, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		h.l.Errorf(ctx, "upload image: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, uploadImageResp{URL: url})
}
