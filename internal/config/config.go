package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// MinPrinterColumns is the narrowest receipt the printer may be configured for.
const MinPrinterColumns = 20

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Logger    LoggerConfig
	Auth      AuthConfig
	S3        S3Config
	Pricelist PricelistConfig
	Printer   PrinterConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	APIKey string
}

// S3Config holds AWS S3 configuration for price-list sheets.
type S3Config struct {
	Enabled bool
	Bucket  string
	Region  string
	Prefix  string // Path prefix within bucket (e.g., "pricelists/")
}

// PricelistConfig lists the sheets that seed the catalog and offers.
// Later files override earlier ones.
type PricelistConfig struct {
	Files []string
}

// PrinterConfig holds receipt printer configuration.
type PrinterConfig struct {
	Columns int
}

// Load loads configuration from an optional .env file and environment
// variables. Variables already set in the environment take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "supermarket"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		S3: S3Config{
			Enabled: getEnvAsBool("S3_ENABLED", false),
			Bucket:  getEnv("S3_BUCKET", ""),
			Region:  getEnv("S3_REGION", "us-east-1"),
			Prefix:  getEnv("S3_PREFIX", "pricelists/"),
		},
		Pricelist: PricelistConfig{
			Files: getEnvAsList("PRICELIST_FILES", []string{"data/pricelists/base.gz"}),
		},
		Printer: PrinterConfig{
			Columns: getEnvAsInt("PRINTER_COLUMNS", 35),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks every section and reports all problems found.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Database.validate(),
		c.Auth.validate(),
		c.Logger.validate(),
		c.S3.validate(),
		c.Printer.validate(),
	)
}

func (c *ServerConfig) validate() error {
	if !validPort(c.Port) {
		return fmt.Errorf("invalid server port: %d", c.Port)
	}
	return nil
}

func (c *DatabaseConfig) validate() error {
	var errs []error
	if c.Host == "" {
		errs = append(errs, errors.New("database host is required"))
	}
	if !validPort(c.Port) {
		errs = append(errs, fmt.Errorf("invalid database port: %d", c.Port))
	}
	if c.User == "" {
		errs = append(errs, errors.New("database user is required"))
	}
	if c.Database == "" {
		errs = append(errs, errors.New("database name is required"))
	}
	switch {
	case c.MaxConnections < 1:
		errs = append(errs, errors.New("database max connections must be at least 1"))
	case c.MinConnections < 1:
		errs = append(errs, errors.New("database min connections must be at least 1"))
	case c.MinConnections > c.MaxConnections:
		errs = append(errs, errors.New("database min connections cannot exceed max connections"))
	}
	return errors.Join(errs...)
}

func (c *AuthConfig) validate() error {
	if c.APIKey == "" {
		return errors.New("API key is required")
	}
	return nil
}

func (c *LoggerConfig) validate() error {
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Level)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Format)
	}
	return nil
}

func (c *S3Config) validate() error {
	if !c.Enabled {
		return nil
	}
	var errs []error
	if c.Bucket == "" {
		errs = append(errs, errors.New("S3 bucket is required when S3 is enabled"))
	}
	if c.Region == "" {
		errs = append(errs, errors.New("S3 region is required when S3 is enabled"))
	}
	return errors.Join(errs...)
}

func (c *PrinterConfig) validate() error {
	if c.Columns < MinPrinterColumns {
		return fmt.Errorf("printer columns must be at least %d", MinPrinterColumns)
	}
	return nil
}

func validPort(port int) bool {
	return port >= 1 && port <= 65535
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// lookupEnv parses a non-empty environment variable, falling back to
// defaultValue when it is unset or does not parse.
func lookupEnv[T any](key string, defaultValue T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := parse(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func getEnv(key, defaultValue string) string {
	return lookupEnv(key, defaultValue, func(v string) (string, error) { return v, nil })
}

func getEnvAsInt(key string, defaultValue int) int {
	return lookupEnv(key, defaultValue, strconv.Atoi)
}

func getEnvAsBool(key string, defaultValue bool) bool {
	return lookupEnv(key, defaultValue, strconv.ParseBool)
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string, defaultValue []string) []string {
	return lookupEnv(key, defaultValue, func(v string) ([]string, error) {
		var out []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	})
}
