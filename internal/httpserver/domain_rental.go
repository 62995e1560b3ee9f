package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryRepo "disc-rental/internal/inventory/repository/mongo"
	"disc-rental/internal/middleware"
	rentalHTTP "disc-rental/internal/rental/delivery/http"
	rentalRepo "disc-rental/internal/rental/repository/mongo"
	rentalUC "disc-rental/internal/rental/usecase"
)

// setupRentalDomain initializes the rental domain and registers its
// routes. The inventory repository is handed in as the item ledger
// rentals draw units from.
func (srv *HTTPServer) setupRentalDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := rentalRepo.New(srv.mongo, srv.l)
	items := inventoryRepo.New(srv.mongo, srv.l)

	uc := rentalUC.New(repo, items, srv.l)
	h := rentalHTTP.New(srv.l, uc)

	rentalHTTP.RegisterRoutes(api.Group("/rentals"), h, mw)

	srv.l.Infof(ctx, "Rental domain registered")
	return nil
}
