package fixture

import (
	"context"

	repo "storefront-admin/internal/database/repository"
	"storefront-admin/internal/model"
)

// FindTemplates returns the global invoice and packing slip templates, stamped with the current time.
func (r *implRepository) FindTemplates(ctx context.Context, opt repo.FindTemplatesOptions) ([]model.Template, error) {
	now := r.now()

	return []model.Template{
		{
			ID:        "0",
			Title:     "Invoice Template",
			Shop:      model.ShopGlobal,
			Content:   "<h1>Invoice Title</h1><h4>{{order.total_price}}</h4>",
			Default:   false,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        "1",
			Title:     "Packing Slip Template",
			Shop:      model.ShopGlobal,
			Content:   "<h1>Packing Slip Title</h1><h4>{{order.total_price}}</h4>",
			Default:   true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}, nil
}
