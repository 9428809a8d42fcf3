package shopify

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListOrders(ctx context.Context, input ListOrdersInput) (ListOrdersOutput, error)
}
