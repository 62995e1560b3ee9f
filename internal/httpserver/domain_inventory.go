package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryHTTP "disc-rental/internal/inventory/delivery/http"
	inventoryRepo "disc-rental/internal/inventory/repository/mongo"
	inventoryUC "disc-rental/internal/inventory/usecase"
	"disc-rental/internal/middleware"
	rentalRepo "disc-rental/internal/rental/repository/mongo"
)

// setupInventoryDomain initializes the inventory domain and registers
// its routes. The rental repository doubles as the outstanding-rental
// counter behind the soft-delete eligibility rule.
func (srv *HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := inventoryRepo.New(srv.mongo, srv.l)
	rentals := rentalRepo.New(srv.mongo, srv.l)

	uc := inventoryUC.New(repo, rentals, srv.l)
	h := inventoryHTTP.New(srv.l, uc, srv.uploader)

	inventoryHTTP.RegisterRoutes(api.Group("/inventory"), h, mw)

	srv.l.Infof(ctx, "Inventory domain registered")
	return nil
}
