package fixture

import (
	"context"
	"time"

	repo "storefront-admin/internal/database/repository"
	"storefront-admin/internal/model"
)

// FindLogs returns the four fixture logs. opt.Between is accepted but not applied.
func (r *implRepository) FindLogs(ctx context.Context, opt repo.FindLogsOptions) ([]model.Log, error) {
	if len(opt.Between) > 0 {
		r.l.Debugf(ctx, "%s: between %v ignored by fixture source", r.dsn("FindLogs"), opt.Between)
	}

	aug11 := day(2018, time.August, 11)
	aug08 := day(2018, time.August, 8)

	return []model.Log{
		{ID: "0", Type: model.LogTypeWarning, Source: "server", Message: "Foo bad", Data: map[string]any{}, CreatedAt: aug11},
		{ID: "1", Type: model.LogTypeInfo, Source: "server", Message: "Foo ok", Data: map[string]any{}, CreatedAt: aug11},
		{ID: "2", Type: model.LogTypeSuccess, Source: "server", Message: "Foo good", Data: map[string]any{}, CreatedAt: aug08},
		{ID: "3", Type: model.LogTypeInfo, Source: "server", Message: "Foo ok", Data: map[string]any{}, CreatedAt: aug11},
	}, nil
}

func day(year int, month time.Month, d int) int64 {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC).UnixMilli()
}
