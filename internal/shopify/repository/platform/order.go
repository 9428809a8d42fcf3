package platform

import (
	"context"
	"encoding/json"
	"fmt"

	repo "storefront-admin/internal/shopify/repository"
)

// ListOrders fetches the order listing and returns the body unmodified.
func (r *implRepository) ListOrders(ctx context.Context, opt repo.ListOrdersOptions) (json.RawMessage, error) {
	status := opt.Status
	if status == "" {
		status = "any"
	}

	res, err := r.ordersResource(status)
	if err != nil {
		return nil, err
	}

	out, err := res.Handler(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("shopify/repository/platform.ListOrders: %w", err)
	}
	if out.ParseErr != nil {
		return nil, fmt.Errorf("shopify/repository/platform.ListOrders: %w", out.ParseErr)
	}
	return out.Data, nil
}
