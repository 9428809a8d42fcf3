package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Storefront admin specifics
	API       APIConfig
	Shopify   ShopifyConfig
	Dashboard DashboardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// APIConfig locates the add-on API the dashboard calls through its resource registry.
type APIConfig struct {
	BaseURL string
}

// ShopifyConfig holds the storefront platform credentials. An empty ShopURL disables the order proxy.
type ShopifyConfig struct {
	ShopURL     string
	AccessToken string
	APIVersion  string
	RatePerSec  float64
}

type DashboardConfig struct {
	SessionTTL  time.Duration
	MaxSessions int
	LastPage    int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// API
	cfg.API.BaseURL = viper.GetString("api.base_url")
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = fmt.Sprintf("http://localhost:%d", cfg.HTTPServer.Port)
	}

	// Storefront platform
	cfg.Shopify.ShopURL = viper.GetString("shopify.shop_url")
	cfg.Shopify.AccessToken = viper.GetString("shopify.access_token")
	cfg.Shopify.APIVersion = viper.GetString("shopify.api_version")
	cfg.Shopify.RatePerSec = viper.GetFloat64("shopify.rate_per_sec")
	if token := viper.GetString("shopify_access_token"); token != "" {
		cfg.Shopify.AccessToken = token
	}

	// Dashboard
	cfg.Dashboard.SessionTTL = viper.GetDuration("dashboard.session_ttl")
	cfg.Dashboard.MaxSessions = viper.GetInt("dashboard.max_sessions")
	cfg.Dashboard.LastPage = viper.GetInt("dashboard.last_page")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 600)

	viper.SetDefault("shopify.api_version", "2024-01")
	viper.SetDefault("shopify.rate_per_sec", 2)

	viper.SetDefault("dashboard.session_ttl", "30m")
	viper.SetDefault("dashboard.max_sessions", 1000)
	viper.SetDefault("dashboard.last_page", 0)
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Dashboard.LastPage < 0 {
		return fmt.Errorf("dashboard.last_page must not be negative")
	}
	if cfg.Shopify.ShopURL != "" && cfg.Shopify.AccessToken == "" {
		fmt.Printf("Warning: shopify.shop_url is set but no access token is configured\n")
	}
	return nil
}
