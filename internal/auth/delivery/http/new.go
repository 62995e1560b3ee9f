package http

import (
	"disc-rental/config"
	"disc-rental/internal/auth"
	"disc-rental/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	Login(c interface{})
	Me(c interface{})
	Logout(c interface{})
}

type handler struct {
	l          log.Logger
	uc         auth.UseCase
	authConfig config.AuthConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, authConfig config.AuthConfig) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		authConfig: authConfig,
	}
}
