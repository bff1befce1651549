package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"opeec-backend/internal/logger"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	Pricing   PricingConfig   `yaml:"pricing"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
}

// ServerConfig contains HTTP and gRPC health listener settings
type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	GRPCPort int    `yaml:"grpc_port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string        `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string        `yaml:"format"` // "json" or "text"
	File   LogFileConfig `yaml:"file"`
}

// LogFileConfig enables a rotating log file next to stdout
type LogFileConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Path       string `yaml:"path"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// PricingConfig contains fee engine and duration fallback settings
type PricingConfig struct {
	// "fixed" (0.5pp/day) or "multiplier" (settings.daily_insurance_multiplier pp/day)
	InsuranceFactorMode string `yaml:"insurance_factor_mode"`
	// Defaults used when an equipment duration reference cannot be resolved
	DefaultAdvanceNotice   int `yaml:"default_advance_notice"`
	DefaultMinimumDuration int `yaml:"default_minimum_duration"`
	// 0 leaves rentals without a maximum reference unbounded
	DefaultMaximumDuration int `yaml:"default_maximum_duration"`
}

// CatalogConfig contains duration catalog cache settings
type CatalogConfig struct {
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	RepairLocationCoordinates string `yaml:"repair_location_coordinates"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML configuration, applies environment overrides and validates it
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}
	if val := os.Getenv("GRPC_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.GRPCPort)
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("LOG_FILE"); val != "" {
		c.Log.File.Enabled = true
		c.Log.File.Path = val
	}

	// Pricing
	if val := os.Getenv("INSURANCE_FACTOR_MODE"); val != "" {
		c.Pricing.InsuranceFactorMode = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.GRPCPort == 0 {
		c.Server.GRPCPort = c.Server.Port + 1
	}
	if c.Server.GRPCPort < 0 || c.Server.GRPCPort > 65535 || c.Server.GRPCPort == c.Server.Port {
		return fmt.Errorf("invalid grpc port: %d", c.Server.GRPCPort)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	// Log file defaults
	if c.Log.File.Enabled {
		if c.Log.File.Path == "" {
			return fmt.Errorf("log file path is required when file logging is enabled")
		}
		if c.Log.File.MaxSizeMB == 0 {
			c.Log.File.MaxSizeMB = 100
		}
	}

	// Pricing validation
	switch c.Pricing.InsuranceFactorMode {
	case "":
		c.Pricing.InsuranceFactorMode = "fixed"
	case "fixed", "multiplier":
	default:
		return fmt.Errorf("invalid insurance factor mode: %q", c.Pricing.InsuranceFactorMode)
	}
	if c.Pricing.DefaultAdvanceNotice < 0 || c.Pricing.DefaultMinimumDuration < 0 || c.Pricing.DefaultMaximumDuration < 0 {
		return fmt.Errorf("pricing duration defaults must not be negative")
	}
	if c.Pricing.DefaultMinimumDuration == 0 {
		c.Pricing.DefaultMinimumDuration = 1
	}
	// A zero maximum leaves rentals unbounded
	if c.Pricing.DefaultMaximumDuration > 0 && c.Pricing.DefaultMaximumDuration < c.Pricing.DefaultMinimumDuration {
		return fmt.Errorf("default maximum duration %d is below default minimum %d",
			c.Pricing.DefaultMaximumDuration, c.Pricing.DefaultMinimumDuration)
	}

	// Catalog defaults
	if c.Catalog.CacheTTLSeconds == 0 {
		c.Catalog.CacheTTLSeconds = 300
	}

	// Scheduler defaults
	if c.Scheduler.RepairLocationCoordinates == "" {
		c.Scheduler.RepairLocationCoordinates = "0 0 2 * * *" // 2 AM UTC
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// GetGRPCAddress returns the gRPC health server address
func (c *Config) GetGRPCAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.GRPCPort)
}

// CatalogCacheTTL returns the duration catalog cache lifetime
func (c *Config) CatalogCacheTTL() time.Duration {
	return time.Duration(c.Catalog.CacheTTLSeconds) * time.Second
}

// LogFileOutput returns the rotating file sink, or nil when file logging is off
func (c *Config) LogFileOutput() *logger.FileOutput {
	if !c.Log.File.Enabled {
		return nil
	}
	return &logger.FileOutput{
		Path:       c.Log.File.Path,
		MaxSizeMB:  c.Log.File.MaxSizeMB,
		MaxBackups: c.Log.File.MaxBackups,
		MaxAgeDays: c.Log.File.MaxAgeDays,
		Compress:   c.Log.File.Compress,
	}
}
