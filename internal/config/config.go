package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"todo/internal/domain"
)

// Config holds all configuration options for the todo application
type Config struct {
	Database    DatabaseConfig
	Time        TimeConfig
	Display     DisplayConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TODO_DB_DIR"`
	Filename       string        `env:"TODO_DB_FILENAME"`
	BusyTimeout    time.Duration `env:"TODO_DB_BUSY_TIMEOUT"`
	DirPermissions uint32        `env:"TODO_DB_DIR_PERMISSIONS"`
}

// TimeConfig holds time formatting configuration
type TimeConfig struct {
	DisplayFormat string `env:"TODO_TIME_DISPLAY_FORMAT"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	Color bool `env:"TODO_DISPLAY_COLOR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TODO_APP_TIMEOUT"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ListDefaultOrder string `env:"TODO_LIST_DEFAULT_ORDER"`
}

// NewConfig creates a new configuration with defaults
func NewConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Dir:            "./todo_db",
			Filename:       "todo.sqlite",
			BusyTimeout:    5 * time.Second,
			DirPermissions: 0755,
		},
		Time: TimeConfig{
			DisplayFormat: "2006-01-02 15:04:05",
		},
		Display: DisplayConfig{
			Color: true,
		},
		Application: ApplicationConfig{
			Timeout: 30 * time.Second,
		},
		Commands: CommandsConfig{
			ListDefaultOrder: string(domain.OrderByInsertion),
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetListOrder returns the configured default list order
func (c *Config) GetListOrder() domain.ListOrder {
	order, err := domain.ParseListOrder(c.Commands.ListDefaultOrder)
	if err != nil {
		return domain.OrderByInsertion
	}
	return order
}

// LoadFromEnvironment loads configuration from environment variables.
// Values that fail to parse are ignored and the previous value is kept.
func (c *Config) LoadFromEnvironment() error {
	// Database configuration
	if dir := os.Getenv("TODO_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TODO_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TODO_DB_BUSY_TIMEOUT"); timeout != "" {
		c.Database.BusyTimeout = ParseDurationWithFallback(timeout, c.Database.BusyTimeout)
	}
	if perms := os.Getenv("TODO_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Time configuration
	if format := os.Getenv("TODO_TIME_DISPLAY_FORMAT"); format != "" {
		c.Time.DisplayFormat = format
	}

	// Display configuration
	if colour := os.Getenv("TODO_DISPLAY_COLOR"); colour != "" {
		c.Display.Color = ParseBoolWithFallback(colour, c.Display.Color)
	}

	// Application configuration
	if timeout := os.Getenv("TODO_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}

	// Commands configuration
	if order := os.Getenv("TODO_LIST_DEFAULT_ORDER"); order != "" {
		c.Commands.ListDefaultOrder = order
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.BusyTimeout < 0 {
		return &ConfigError{Field: "database.busy_timeout", Message: "busy timeout cannot be negative"}
	}

	if c.Time.DisplayFormat == "" {
		return &ConfigError{Field: "time.display_format", Message: "display format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	if _, err := domain.ParseListOrder(c.Commands.ListDefaultOrder); err != nil {
		return &ConfigError{Field: "commands.list_default_order", Message: `list order must be "id" or "status"`}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
