package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store backends selectable through STORE.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config is the process configuration, read from the environment after an
// optional .env file.
type Config struct {
	Env        string
	LogLevel   string
	ServerPort string
	JWTSecret  string
	Store      string
	DB         DBConfig
}

// DBConfig holds database connection parameters
type DBConfig struct {
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns URL when set, otherwise a postgres:// URL built from the parts.
func (c DBConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Name,
		RawQuery: "sslmode=" + c.SSLMode,
	}
	return u.String()
}

// Load reads configuration. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return fromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("STORE", StorePostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "gramvista")
	v.SetDefault("DB_SSLMODE", "disable")
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Env:        v.GetString("APP_ENV"),
		LogLevel:   v.GetString("LOG_LEVEL"),
		ServerPort: v.GetString("SERVER_PORT"),
		JWTSecret:  v.GetString("JWT_SECRET_KEY"),
		Store:      strings.ToLower(v.GetString("STORE")),
		DB: DBConfig{
			URL:      v.GetString("DATABASE_URL"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetInt("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set in environment")
	}
	if cfg.Store != StorePostgres && cfg.Store != StoreMemory {
		return nil, fmt.Errorf("STORE must be %q or %q, got %q", StorePostgres, StoreMemory, cfg.Store)
	}
	return cfg, nil
}
