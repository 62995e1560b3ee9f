package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"disc-rental/config"
	"disc-rental/pkg/log"
	pkgMongo "disc-rental/pkg/mongo"
	"disc-rental/pkg/objstore"
	"disc-rental/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mongo      *pkgMongo.Client
	jwtManager scope.Manager
	authConfig config.AuthConfig
	uploader   objstore.Uploader
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Mongo      *pkgMongo.Client
	JWTManager scope.Manager
	AuthConfig config.AuthConfig
	Uploader   objstore.Uploader
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mongo:       cfg.Mongo,
		jwtManager:  cfg.JWTManager,
		authConfig:  cfg.AuthConfig,
		uploader:    cfg.Uploader,
	}
	if srv.uploader == nil {
		srv.uploader = objstore.Disabled{}
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.mongo == nil {
		return errors.New("mongo client is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	return nil
}
