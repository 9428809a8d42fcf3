package dashboard

import (
	"context"
	"fmt"
	"time"

	"storefront-admin/internal/model"
	"storefront-admin/internal/resources"
	"storefront-admin/internal/view"
	"storefront-admin/pkg/response"
)

// logsSince is the lower bound of the log query range.
var logsSince = time.Date(2018, time.August, 11, 0, 0, 0, 0, time.UTC)

func (h *handler) logsPage(lastPage int) page {
	options := make([]string, 0, len(model.LogTypes))
	for _, t := range model.LogTypes {
		options = append(options, string(t))
	}

	return &listPage[model.Log]{
		name:       pageLogs,
		modalTitle: "Log Details",
		lastPage:   lastPage,
		l:          h.l,
		cfg: view.Config[model.Log]{
			Title:    "Logs",
			Singular: "log",
			Plural:   "logs",
			Filters: []view.Filter{{
				Key:          "type",
				Label:        "Log Type",
				OperatorText: "is",
				Options:      options,
			}},
			Match: func(l model.Log) string { return l.Message },
			Predicates: map[string]view.Predicate[model.Log]{
				"type": func(l model.Log, value string) bool { return string(l.Type) == value },
			},
			ID: func(l model.Log) string { return l.ID },
		},
		load: h.loadLogs,
		row: func(l model.Log) row {
			return row{
				ID:     l.ID,
				Title:  l.Message,
				Meta:   formatMillis(l.CreatedAt),
				Badges: []badge{{Status: string(l.Type)}},
			}
		},
	}
}

func (h *handler) ordersPage(lastPage int) page {
	return &listPage[model.Order]{
		name:       pageOrders,
		modalTitle: "Order Preview",
		lastPage:   lastPage,
		selectable: true,
		l:          h.l,
		cfg: view.Config[model.Order]{
			Title:    "Orders",
			Singular: "order",
			Plural:   "orders",
			Match:    func(o model.Order) string { return o.Name() },
			ID:       func(o model.Order) string { return o.ID() },
		},
		load: h.loadOrders,
		row: func(o model.Order) row {
			email := o.Email()
			if email == "" {
				email = "—"
			}
			financial := badge{Status: "warning", Text: o.FinancialStatus()}
			if o.FinancialStatus() == "paid" {
				financial.Status = "info"
			}
			fulfillment := badge{Status: "attention", Text: o.FulfillmentStatus()}
			if o.FulfillmentStatus() == "fulfilled" {
				fulfillment.Status = "success"
			}
			if fulfillment.Text == "" {
				fulfillment.Text = "unfulfilled"
			}
			return row{
				ID:       o.ID(),
				Title:    o.Name(),
				Subtitle: email,
				Meta:     formatTimestamp(o.CreatedAt()),
				Badges:   []badge{financial, fulfillment},
			}
		},
	}
}

func (h *handler) templatesPage(lastPage int) page {
	return &listPage[model.Template]{
		name:       pageTemplates,
		modalTitle: "Template Preview",
		lastPage:   lastPage,
		l:          h.l,
		cfg: view.Config[model.Template]{
			Title:    "Templates",
			Singular: "template",
			Plural:   "templates",
			Match:    func(t model.Template) string { return t.Title },
			ID:       func(t model.Template) string { return t.ID },
		},
		load: h.loadTemplates,
		row: func(t model.Template) row {
			r := row{
				ID:       t.ID,
				Title:    t.Title,
				Subtitle: "shop " + t.Shop,
				Meta:     t.UpdatedAt.UTC().Format(response.DateTimeFormat),
			}
			if t.Default {
				r.Badges = []badge{{Status: "success", Text: "default"}}
			}
			return r
		},
	}
}

func (h *handler) loadLogs(ctx context.Context) ([]model.Log, error) {
	out, err := h.reg.Database.Find.Log.Handler(ctx, &model.FindRequest{
		Model: model.ModelLog,
		Query: model.FindQuery{Between: []time.Time{logsSince, time.Now().UTC()}},
	}, resources.Forward(ctx))
	if err != nil {
		return nil, err
	}
	if out.ParseErr != nil {
		return nil, fmt.Errorf("logs: %w", out.ParseErr)
	}
	return out.Data.Response.Items, nil
}

func (h *handler) loadTemplates(ctx context.Context) ([]model.Template, error) {
	out, err := h.reg.Database.Find.Template.Handler(ctx, &model.FindRequest{Model: model.ModelTemplate}, resources.Forward(ctx))
	if err != nil {
		return nil, err
	}
	if out.ParseErr != nil {
		return nil, fmt.Errorf("templates: %w", out.ParseErr)
	}
	return out.Data.Response.Items, nil
}

func (h *handler) loadOrders(ctx context.Context) ([]model.Order, error) {
	out, err := h.reg.Shopify.Orders.Handler(ctx, nil, resources.Forward(ctx))
	if err != nil {
		return nil, err
	}
	if out.ParseErr != nil {
		return nil, fmt.Errorf("orders: %w", out.ParseErr)
	}
	return out.Data.Orders, nil
}

func formatMillis(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(response.DateTimeFormat)
}

func formatTimestamp(s string) string {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return t.Format(response.DateTimeFormat)
}
