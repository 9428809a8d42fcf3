package platform

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"storefront-admin/internal/shopify/repository"
	"storefront-admin/pkg/log"
	"storefront-admin/pkg/resource"
)

const accessTokenHeader = "X-Shopify-Access-Token"

// Config locates a shop's admin API.
type Config struct {
	ShopURL     string
	AccessToken string
	APIVersion  string
	RatePerSec  float64
}

type implRepository struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
	l       log.Logger
}

// New creates a Repository backed by the platform admin REST API.
func New(cfg Config, client *http.Client, l log.Logger) (repository.Repository, error) {
	if cfg.ShopURL == "" {
		return nil, fmt.Errorf("shopify/repository/platform: shop url is required")
	}
	if _, err := url.Parse(cfg.ShopURL); err != nil {
		return nil, fmt.Errorf("shopify/repository/platform: shop url: %w", err)
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = "2024-01"
	}
	if client == nil {
		client = http.DefaultClient
	}

	var limiter *rate.Limiter
	if cfg.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1)
	}

	return &implRepository{
		cfg:     cfg,
		client:  client,
		limiter: limiter,
		l:       l,
	}, nil
}

// ordersResource builds the GET resource for one status filter.
func (r *implRepository) ordersResource(status string) (*resource.Resource[struct{}, json.RawMessage], error) {
	q := url.Values{}
	q.Set("status", status)
	path := fmt.Sprintf("/admin/api/%s/orders.json?%s", r.cfg.APIVersion, q.Encode())

	opts := []resource.Option{
		resource.WithBaseURL(strings.TrimRight(r.cfg.ShopURL, "/")),
		resource.WithHTTPClient(r.client),
		resource.WithLogger(r.l),
	}
	if r.limiter != nil {
		opts = append(opts, resource.WithLimiter(r.limiter))
	}

	return resource.New[struct{}, json.RawMessage](resource.Options{
		Path:   path,
		Method: resource.MethodGet,
		Header: http.Header{accessTokenHeader: []string{r.cfg.AccessToken}},
	}, opts...)
}
