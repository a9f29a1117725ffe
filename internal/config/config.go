package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Supported cart store backends
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	Cart        CartConfig
	Checkout    CheckoutConfig
	Redis       RedisConfig
	Database    DatabaseConfig
}

// CartConfig holds the cart engine's pricing constants and the persistence
// backend selection. Threshold and flat fee are currency units (INR).
type CartConfig struct {
	Store                 string // file | redis | postgres
	FilePath              string // used by the file store
	StorageKey            string // durable slot name, fixed per deployment
	FreeShippingThreshold float64
	ShippingFlatFee       float64
}

// CheckoutConfig holds the simulated payment gateway settings
type CheckoutConfig struct {
	ProcessingDelay time.Duration
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CART_STORE", StoreFile)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		LogLevel:    getEnvOrViper("LOG_LEVEL", "info"),
		Cart: CartConfig{
			Store:                 strings.ToLower(getEnvOrViper("CART_STORE", StoreFile)),
			FilePath:              getEnvOrViper("CART_FILE_PATH", "./data/cart.json"),
			StorageKey:            getEnvOrViper("CART_STORAGE_KEY", "littoral-cart"),
			FreeShippingThreshold: getEnvFloat("FREE_SHIPPING_THRESHOLD", 499),
			ShippingFlatFee:       getEnvFloat("SHIPPING_FLAT_FEE", 49),
		},
		Checkout: CheckoutConfig{
			ProcessingDelay: getEnvDuration("CHECKOUT_PROCESSING_DELAY", 2*time.Second),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrViper("REDIS_ADDR", "localhost:6379"),
			Password: getEnvOrViper("REDIS_PASSWORD", ""),
			DB:       0,
		},
		Database: DatabaseConfig{
			Host:     getEnvOrViper("DB_HOST", "localhost"),
			Port:     getEnvOrViper("DB_PORT", "5432"),
			User:     getEnvOrViper("DB_USER", "postgres"),
			Password: getEnvOrViper("DB_PASSWORD", "postgres"),
			DBName:   getEnvOrViper("DB_NAME", "littoral"),
			SSLMode:  getEnvOrViper("DB_SSLMODE", "disable"),
		},
	}

	// Validate required fields
	switch cfg.Cart.Store {
	case StoreFile, StoreRedis, StorePostgres:
	default:
		return nil, fmt.Errorf("CART_STORE must be one of file, redis, postgres; got %q", cfg.Cart.Store)
	}
	if cfg.Cart.FreeShippingThreshold < 0 || cfg.Cart.ShippingFlatFee < 0 {
		return nil, fmt.Errorf("shipping configuration must not be negative")
	}

	return cfg, nil
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if viper.IsSet(key) {
		return viper.GetFloat64(key)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if viper.IsSet(key) {
		if d := viper.GetDuration(key); d > 0 {
			return d
		}
	}
	return defaultValue
}
