package usecase

import (
	"storefront-admin/internal/database/repository"
	"storefront-admin/pkg/log"
)

// implUseCase is the private implementation of database.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new database UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
