package config

import (
	"fmt"
	"os"
	"time"

	"github.com/yigit/campuserp/internal/app/models"
	"github.com/yigit/campuserp/internal/pkg/validation"
	"gopkg.in/yaml.v3"
)

// Directory sources
const (
	DirectoryMemory   = "memory"
	DirectoryPostgres = "postgres"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
		SecureCookie    bool   `yaml:"secure_cookie" env:"SERVER_SECURE_COOKIE"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		ClientTokenExpiration string `yaml:"client_token_expiration" env:"JWT_CLIENT_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Auth struct {
		DemoPassword string `yaml:"demo_password" env:"AUTH_DEMO_PASSWORD"`
		LoginLatency string `yaml:"login_latency" env:"AUTH_LOGIN_LATENCY"`
	} `yaml:"auth"`

	Session struct {
		IdleTimeout   string `yaml:"idle_timeout" env:"SESSION_IDLE_TIMEOUT"`
		SweepInterval string `yaml:"sweep_interval" env:"SESSION_SWEEP_INTERVAL"`
	} `yaml:"session"`

	Directory struct {
		Source  string            `yaml:"source" env:"DIRECTORY_SOURCE"`
		Seed    bool              `yaml:"seed" env:"DIRECTORY_SEED"`
		Entries []models.Identity `yaml:"entries"`
	} `yaml:"directory"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// a missing file leaves the defaults in place
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "15s"
	config.Server.WriteTimeout = "15s"
	config.Server.ShutdownTimeout = "10s"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "campuserp"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	// JWT defaults
	config.JWT.ClientTokenExpiration = "24h"
	config.JWT.Issuer = "campuserp.app"

	// Auth defaults
	config.Auth.DemoPassword = "password"
	config.Auth.LoginLatency = "1s"

	// Session defaults
	config.Session.IdleTimeout = "24h"
	config.Session.SweepInterval = "10m"

	// Directory defaults
	config.Directory.Source = DirectoryMemory
	config.Directory.Seed = true

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if config.Auth.DemoPassword == "" {
		return fmt.Errorf("demo password is required")
	}

	durations := map[string]string{
		"JWT client token expiration": config.JWT.ClientTokenExpiration,
		"login latency":               config.Auth.LoginLatency,
		"session idle timeout":        config.Session.IdleTimeout,
		"session sweep interval":      config.Session.SweepInterval,
		"server read timeout":         config.Server.ReadTimeout,
		"server write timeout":        config.Server.WriteTimeout,
		"server shutdown timeout":     config.Server.ShutdownTimeout,
	}
	for name, value := range durations {
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
		if d < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	// entries feed the memory directory and the postgres seed alike
	seen := make(map[string]bool, len(config.Directory.Entries))
	for i, e := range config.Directory.Entries {
		if !validation.Email(e.Email) {
			return fmt.Errorf("directory entry %d has invalid email %q", i, e.Email)
		}
		if !validation.Name(e.Name) {
			return fmt.Errorf("directory entry %q has invalid name %q", e.Email, e.Name)
		}
		if !e.Role.IsValid() {
			return fmt.Errorf("directory entry %q has invalid role %q", e.Email, e.Role)
		}
		if !validation.RollNumber(e.RollNumber) {
			return fmt.Errorf("directory entry %q has invalid roll number %q", e.Email, e.RollNumber)
		}
		key := e.Email + "|" + string(e.Role)
		if seen[key] {
			return fmt.Errorf("directory entry %q (%s) is listed twice", e.Email, e.Role)
		}
		seen[key] = true
	}

	switch config.Directory.Source {
	case DirectoryMemory:
	case DirectoryPostgres:
		if config.Database.Host == "" {
			return fmt.Errorf("database host is required for the postgres directory")
		}
	default:
		return fmt.Errorf("unknown directory source %q", config.Directory.Source)
	}

	return nil
}

// DirectoryEntries returns the configured directory entries, or the built-in
// demo identities when none are configured
func (c *Config) DirectoryEntries() []models.Identity {
	if len(c.Directory.Entries) == 0 {
		return models.DemoIdentities()
	}
	return append([]models.Identity(nil), c.Directory.Entries...)
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
