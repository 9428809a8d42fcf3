package repository

import (
	"context"
	"encoding/json"
)

// Repository reads from the storefront platform admin API.
type Repository interface {
	ListOrders(ctx context.Context, opt ListOrdersOptions) (json.RawMessage, error)
}

// ListOrdersOptions holds filter parameters for ListOrders.
type ListOrdersOptions struct {
	Status string
}
