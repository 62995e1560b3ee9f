package http

import (
	"disc-rental/internal/inventory"
	"disc-rental/pkg/log"
	"disc-rental/pkg/objstore"
)

// Handler is the public interface for the inventory HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Update(c interface{})
	BulkDelete(c interface{})
	UploadImage(c interface{})
}

type handler struct {
	l        log.Logger
	uc       inventory.UseCase
	uploader objstore.Uploader
}

// New creates a new HTTP handler for the inventory domain.
func New(l log.Logger, uc inventory.UseCase, uploader objstore.Uploader) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		uploader: uploader,
	}
}
