package usecase

import (
	"storefront-admin/internal/shopify/repository"
	"storefront-admin/pkg/log"
)

// implUseCase is the private implementation of shopify.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new shopify UseCase. A nil repo means the platform is not configured.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
