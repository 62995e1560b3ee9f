package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "disc-rental/pkg/errors"
)

// processCreateReq binds and validates the create rental request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateReq binds the update rental request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.NewHTTPError(400, "id is required")
	}
	return req, nil
}

// processBulkDeleteReq binds the bulk delete request body.
func (h *handler) processBulkDeleteReq(c *gin.Context) (bulkDeleteReq, error) {
	var req bulkDeleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
