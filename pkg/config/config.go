package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Vendor   VendorConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	StaticDir   string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// VendorConfig is the single operator identity allowed to log in with
// role=vendor. The account is not store-backed; credentials come from the
// environment and are compared in the user service.
type VendorConfig struct {
	ID       string
	Name     string
	Email    string
	Password string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Campus Print API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			StaticDir:   getEnv("STATIC_DIR", "dist"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "campus_print"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Vendor: VendorConfig{
			ID:       getEnv("VENDOR_ID", "vendor_admin"),
			Name:     getEnv("VENDOR_NAME", ""),
			Email:    getEnv("VENDOR_EMAIL", ""),
			Password: getEnv("VENDOR_PASSWORD", ""),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Vendor.Email == "" || cfg.Vendor.Password == "" {
		return nil, errors.New("missing vendor operator credentials")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
