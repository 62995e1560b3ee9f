package http

import (
	"disc-rental/internal/rental"
	"disc-rental/pkg/log"
)

// Handler is the public interface for the rental HTTP delivery layer.
type Handler interface {
	Create(c interface{})
	List(c interface{})
	Update(c interface{})
	BulkDelete(c interface{})
}

type handler struct {
	l  log.Logger
	uc rental.UseCase
}

// New creates a new HTTP handler for the rental domain.
func New(l log.Logger, uc rental.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
