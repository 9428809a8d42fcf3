package usecase

import (
	"context"
	"fmt"

	"storefront-admin/internal/shopify"
	repo "storefront-admin/internal/shopify/repository"
)

// ListOrders proxies the platform order listing.
func (uc *implUseCase) ListOrders(ctx context.Context, input shopify.ListOrdersInput) (shopify.ListOrdersOutput, error) {
	if uc.repo == nil {
		return shopify.ListOrdersOutput{}, shopify.ErrNotConfigured
	}

	body, err := uc.repo.ListOrders(ctx, repo.ListOrdersOptions{Status: input.Status})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListOrders repo.ListOrders: %v", err)
		return shopify.ListOrdersOutput{}, fmt.Errorf("%w: %v", shopify.ErrUpstream, err)
	}

	return shopify.ListOrdersOutput{Body: body}, nil
}
