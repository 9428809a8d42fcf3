package resources

import (
	"fmt"
	"net/http"

	"storefront-admin/internal/model"
	"storefront-admin/pkg/log"
	"storefront-admin/pkg/resource"
)

// Paths of the add-on API served by this process.
const (
	PathDatabaseFind    = "/api/database/find"
	PathDatabaseFindLog = "/api/database/find/log"
	PathShopifyOrders   = "/api/shopify/orders"
)

type (
	LogsResource      = resource.Resource[model.FindRequest, model.FindEnvelope[model.Log]]
	TemplatesResource = resource.Resource[model.FindRequest, model.FindEnvelope[model.Template]]
	OrdersResource    = resource.Resource[struct{}, model.OrdersEnvelope]
)

// Registry holds the pre-built resources the dashboard calls. Build it once and pass it by reference.
type Registry struct {
	Database Database
	Shopify  Shopify
}

type Database struct {
	Find Find
}

// Find groups the discriminated find resources. Log and Template share the
// dispatch route; LogRoute is the single-model log route.
type Find struct {
	Log      *LogsResource
	Template *TemplatesResource
	LogRoute *LogsResource
}

type Shopify struct {
	Orders *OrdersResource
}

// Config locates the API the registry talks to.
type Config struct {
	BaseURL string
	Client  *http.Client
}

// New builds the Registry.
func New(cfg Config, l log.Logger) (*Registry, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("internal.resources.New: base url is required")
	}
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	opts := []resource.Option{
		resource.WithBaseURL(cfg.BaseURL),
		resource.WithHTTPClient(client),
		resource.WithLogger(l),
	}

	findLog, err := resource.New[model.FindRequest, model.FindEnvelope[model.Log]](
		resource.Options{Path: PathDatabaseFind}, opts...)
	if err != nil {
		return nil, err
	}
	findTemplate, err := resource.New[model.FindRequest, model.FindEnvelope[model.Template]](
		resource.Options{Path: PathDatabaseFind}, opts...)
	if err != nil {
		return nil, err
	}
	logRoute, err := resource.New[model.FindRequest, model.FindEnvelope[model.Log]](
		resource.Options{Path: PathDatabaseFindLog}, opts...)
	if err != nil {
		return nil, err
	}
	orders, err := resource.New[struct{}, model.OrdersEnvelope](
		resource.Options{Path: PathShopifyOrders, Method: resource.MethodGet}, opts...)
	if err != nil {
		return nil, err
	}

	return &Registry{
		Database: Database{
			Find: Find{
				Log:      findLog,
				Template: findTemplate,
				LogRoute: logRoute,
			},
		},
		Shopify: Shopify{
			Orders: orders,
		},
	}, nil
}
