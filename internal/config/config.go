package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const EnvironmentSandbox = "sandbox"

// Config holds all configuration for the application
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Server ServerConfig `mapstructure:"server"`
	Square SquareConfig `mapstructure:"square"`
	CORS   CORSConfig   `mapstructure:"cors"`
}

type AppConfig struct {
	Name     string `mapstructure:"name"`
	Version  string `mapstructure:"version"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port            int    `mapstructure:"port"`
	Host            string `mapstructure:"host"`
	RequestTimeout  int    `mapstructure:"request_timeout"`  // seconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // seconds
}

// SquareConfig holds commerce API configuration
type SquareConfig struct {
	Environment           string `mapstructure:"environment"`
	AccessTokenSandbox    string `mapstructure:"access_token_sandbox"`
	AccessTokenProduction string `mapstructure:"access_token_production"`
	SandboxBaseURL        string `mapstructure:"sandbox_base_url"`
	ProductionBaseURL     string `mapstructure:"production_base_url"`
	APIVersion            string `mapstructure:"api_version"`
	Timeout               int    `mapstructure:"timeout"` // seconds
	MaxRequestsPerSecond  int    `mapstructure:"max_requests_per_second"`
	Currency              string `mapstructure:"currency"`
	LocationID            string `mapstructure:"location_id"`
	ProxyURL              string `mapstructure:"proxy_url"`
}

// CORSConfig holds cross-origin settings
type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
	// GatewayEnv is non-empty when running behind a managed API gateway,
	// which handles CORS itself.
	GatewayEnv string `mapstructure:"gateway_env"`
}

// Credentials is the resolved commerce API target
type Credentials struct {
	Environment string
	AccessToken string
	BaseURL     string
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:3000",
	"http://localhost:4173",
	"https://mintkichen.akibrhast.synology.me",
	"http://mintkichen.akibrhast.synology.me",
}

// Load loads configuration from an optional YAML file and .env file with
// environment variable overrides
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.BindEnv("cors.gateway_env", "AWS_EXECUTION_ENV"); err != nil {
		return nil, fmt.Errorf("failed to bind gateway env: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("No config.yaml found, using defaults and environment")
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	config.CORS.Origins = cleanOrigins(config.CORS.Origins)

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Mint Kitchen API")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.log_level", "info")

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.request_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 10)

	v.SetDefault("square.environment", "production")
	v.SetDefault("square.access_token_sandbox", "")
	v.SetDefault("square.access_token_production", "")
	v.SetDefault("square.sandbox_base_url", "https://connect.squareupsandbox.com")
	v.SetDefault("square.production_base_url", "https://connect.squareup.com")
	v.SetDefault("square.api_version", "2025-01-23")
	v.SetDefault("square.timeout", 20)
	v.SetDefault("square.max_requests_per_second", 10)
	v.SetDefault("square.currency", "USD")
	v.SetDefault("square.location_id", "")
	v.SetDefault("square.proxy_url", "")

	v.SetDefault("cors.origins", defaultOrigins)
}

func cleanOrigins(origins []string) []string {
	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		// a single env value may still carry commas
		for _, part := range strings.Split(origin, ",") {
			if part = strings.TrimSpace(part); part != "" {
				cleaned = append(cleaned, part)
			}
		}
	}
	return cleaned
}

// Validate fails when no environment has a credential at all. A credential
// missing only for the selected environment is allowed; the service then
// reports itself as unconfigured.
func (c *Config) Validate() error {
	if c.Square.AccessTokenSandbox == "" {
		log.Warn("SQUARE_ACCESS_TOKEN_SANDBOX not found in environment variables")
	}
	if c.Square.AccessTokenProduction == "" {
		log.Warn("SQUARE_ACCESS_TOKEN_PRODUCTION not found in environment variables")
	}
	if c.Square.AccessTokenSandbox == "" && c.Square.AccessTokenProduction == "" {
		return errors.New("no Square access token configured for sandbox or production")
	}
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	return nil
}

// Resolve selects the environment, token and base URL
func (s SquareConfig) Resolve() Credentials {
	if s.Environment == EnvironmentSandbox {
		return Credentials{
			Environment: EnvironmentSandbox,
			AccessToken: s.AccessTokenSandbox,
			BaseURL:     s.SandboxBaseURL,
		}
	}
	return Credentials{
		Environment: "production",
		AccessToken: s.AccessTokenProduction,
		BaseURL:     s.ProductionBaseURL,
	}
}

func (c Credentials) Configured() bool {
	return c.AccessToken != ""
}

// AllowAllOrigins reports whether CORS collapses to a wildcard
func (c CORSConfig) AllowAllOrigins() bool {
	if c.GatewayEnv != "" {
		return true
	}
	for _, origin := range c.Origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

func (s ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return time.Duration(s.ShutdownTimeout) * time.Second
}

func (s SquareConfig) TimeoutDuration() time.Duration {
	return time.Duration(s.Timeout) * time.Second
}
