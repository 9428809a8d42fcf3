package fixture

import (
	"fmt"
	"time"

	"storefront-admin/internal/database/repository"
	"storefront-admin/pkg/log"
)

type implRepository struct {
	l   log.Logger
	now func() time.Time
}

// Option configures the fixture repository.
type Option func(*implRepository)

// WithClock overrides time.Now for template timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *implRepository) { r.now = now }
}

// New creates a Repository serving canned records. No query is executed.
func New(l log.Logger, opts ...Option) repository.Repository {
	r := &implRepository{l: l, now: time.Now}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("database/repository/fixture.%s", method)
}
