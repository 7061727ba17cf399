package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	PasswordSchemePlain  = "plain"
	PasswordSchemeBcrypt = "bcrypt"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Auth     AuthConfig
	CORS     CORSConfig
}

type DatabaseConfig struct {
	Driver   string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Host      string
	Port      int
	Env       string
	LogLevel  string
	LogFormat string
}

// AuthConfig controls how admin credentials are seeded and compared.
type AuthConfig struct {
	PasswordScheme  string
	DefaultUsername string
	DefaultPassword string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads an optional .env file followed by the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	} else if err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() (*Config, error) {
	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		Path:     getEnv("DB_PATH", "attendance.db"),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Host:      getEnv("APP_HOST", "127.0.0.1"),
		Port:      appPort,
		Env:       getEnv("APP_ENV", "development"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Auth = AuthConfig{
		PasswordScheme:  strings.ToLower(getEnv("AUTH_PASSWORD_SCHEME", PasswordSchemePlain)),
		DefaultUsername: getEnv("ADMIN_DEFAULT_USERNAME", "admin"),
		DefaultPassword: getEnv("ADMIN_DEFAULT_PASSWORD", "admin123"),
	}

	config.CORS = CORSConfig{
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required")
		}
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	switch c.Auth.PasswordScheme {
	case PasswordSchemePlain, PasswordSchemeBcrypt:
	default:
		return fmt.Errorf("unsupported AUTH_PASSWORD_SCHEME %q", c.Auth.PasswordScheme)
	}
	if c.Auth.DefaultUsername == "" || c.Auth.DefaultPassword == "" {
		return fmt.Errorf("ADMIN_DEFAULT_USERNAME and ADMIN_DEFAULT_PASSWORD must not be empty")
	}
	return nil
}

// DatabaseDSN returns the connection string for the configured driver.
func (c *Config) DatabaseDSN() string {
	if c.Database.Driver == DriverSQLite {
		return c.Database.Path
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// ListenAddr returns host:port for the HTTP server.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.App.Host, c.App.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
