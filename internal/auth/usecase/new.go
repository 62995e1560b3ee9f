package usecase

import (
	"disc-rental/internal/auth"
	"disc-rental/internal/auth/repository"
	"disc-rental/pkg/log"
	"disc-rental/pkg/scope"
)

type implUseCase struct {
	repo  repository.Repository
	scope scope.Manager
	l     log.Logger
}

// New creates a new auth UseCase.
func New(repo repository.Repository, sc scope.Manager, l log.Logger) auth.UseCase {
	return &implUseCase{
		repo:  repo,
		scope: sc,
		l:     l,
	}
}
