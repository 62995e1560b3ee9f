package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	authHTTP "disc-rental/internal/auth/delivery/http"
	authRepo "disc-rental/internal/auth/repository/mongo"
	authUC "disc-rental/internal/auth/usecase"
	"disc-rental/internal/middleware"
)

// setupAuthDomain initializes the auth domain and registers its routes.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	repo := authRepo.New(srv.mongo, srv.l)
	uc := authUC.New(repo, srv.jwtManager, srv.l)
	h := authHTTP.New(srv.l, uc, srv.authConfig)

	authHTTP.RegisterRoutes(api.Group("/auth"), h, mw)

	srv.l.Infof(ctx, "Auth domain registered")
	return nil
}
