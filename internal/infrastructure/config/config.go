// Package config provides configuration management for the application.
// It follows the 12-Factor App methodology by loading configuration
// from environment variables and supporting external configuration files.
//
// 12-Factor App Compliance:
//   - III. Config: Store config in the environment
//   - Configuration is loaded from environment variables
//   - No config files checked into version control
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/hapkiduki/freight-weight/internal/application/usecase"
	"github.com/hapkiduki/freight-weight/internal/domain/valueobject"
)

// EnvPrefix prefixes every environment variable (Freight Weight Calculator).
const EnvPrefix = "FWC"

// Config holds all application configuration.
// All fields are populated from environment variables or config files.
type Config struct {
	// App contains application-level configuration
	App AppConfig `mapstructure:"app"`

	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Log contains logger configuration
	Log LogConfig `mapstructure:"log"`

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`

	// Calculator contains calculation defaults
	Calculator CalculatorConfig `mapstructure:"calculator"`
}

// AppConfig contains application-level configuration.
type AppConfig struct {
	// Name of the application
	Name string `mapstructure:"name"`

	// Environment the application is running in (e.g., development, staging, production)
	Environment string `mapstructure:"environment"`

	// Version of the application
	Version string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address
	Host string `mapstructure:"host"`

	// Port is the server port
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading the entire request, including the body
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes of the response
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// RequestTimeout bounds the handling of a single request
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// ShutdownTimeout is the maximum duration for graceful server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxRequestSize is the maximum allowed request body size
	MaxRequestSize int64 `mapstructure:"max_request_size"`

	// CORSAllowedOrigins is a list of allowed origins for CORS
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// LogConfig contains logger configuration.
type LogConfig struct {
	// Level is the minimum level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is json or console
	Format string `mapstructure:"format"`
}

// RateLimitConfig contains the per-client token bucket settings.
type RateLimitConfig struct {
	// Enabled toggles the limiter
	Enabled bool `mapstructure:"enabled"`

	// RequestsPerSecond is the refill rate
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`

	// Burst is the bucket size
	Burst int `mapstructure:"burst"`
}

// CalculatorConfig contains defaults applied to incomplete requests.
type CalculatorConfig struct {
	// DefaultUnitSystem is metric or imperial
	DefaultUnitSystem string `mapstructure:"default_unit_system"`

	// DefaultCarrier is IATA, DHL, FedEx, UPS or Custom
	DefaultCarrier string `mapstructure:"default_carrier"`

	// MaxItems caps the items in one request; 0 disables the cap
	MaxItems int `mapstructure:"max_items"`
}

// Load loads the configuration from environment variables and config files.
// It follows this precedence (highest to lowest):
//  1. Environment variables
//  2. Config file (if provided)
//  3. Default values
//
// Parameters:
//   - configFile: explicit config file path; empty searches the default locations
//
// Returns:
//   - *Config: The loaded configuration
//   - error: Any error encountered during loading or validation
func Load(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/freight-weight")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use env vars and defaults
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "freight-weight")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.request_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 30*time.Second)
	v.SetDefault("server.max_request_size", 1<<20)             // 1MB
	v.SetDefault("server.cors_allowed_origins", []string{"*"}) // Allow all origins by default

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)

	// Calculator defaults
	v.SetDefault("calculator.default_unit_system", string(valueobject.UnitSystemMetric))
	v.SetDefault("calculator.default_carrier", string(valueobject.CarrierDHL))
	v.SetDefault("calculator.max_items", 100)
}

// bindEnvVars binds specific environment variables to configuration keys.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("app.environment", EnvPrefix+"_ENVIRONMENT")
	_ = v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT") // Common convention
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
}

// Validate checks values that must parse into domain types.
func (c *Config) Validate() error {
	if _, err := valueobject.ParseUnitSystem(c.Calculator.DefaultUnitSystem); err != nil {
		return fmt.Errorf("calculator.default_unit_system: %w", err)
	}
	if _, err := valueobject.ParseCarrier(c.Calculator.DefaultCarrier); err != nil {
		return fmt.Errorf("calculator.default_carrier: %w", err)
	}
	if c.Calculator.MaxItems < 0 {
		return fmt.Errorf("calculator.max_items: must not be negative, got %d", c.Calculator.MaxItems)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port: out of range: %d", c.Server.Port)
	}
	return nil
}

// CalculatorOptions converts the calculator section into use-case options.
// Call it on a validated Config.
func (c *Config) CalculatorOptions() usecase.Options {
	unit, _ := valueobject.ParseUnitSystem(c.Calculator.DefaultUnitSystem)
	carrier, _ := valueobject.ParseCarrier(c.Calculator.DefaultCarrier)
	return usecase.Options{
		DefaultUnitSystem: unit,
		DefaultCarrier:    carrier,
		MaxItems:          c.Calculator.MaxItems,
	}
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// MustLoad loads the configuration and panics on error.
// Use this in application entry points where configuration is required.
func MustLoad(configFile string) *Config {
	cfg, err := Load(configFile)
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}
