package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	SecretKey    []byte
	OrdersFile   string
	PaymentDelay time.Duration
	CatalogDelay time.Duration
}

// Load reads configuration from the environment, with a .env file as an
// optional source. Only the JWT secret is mandatory.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY not set")
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		SecretKey:    []byte(secret),
		OrdersFile:   getEnv("ORDERS_FILE", "bakery_orders.json"),
		PaymentDelay: getDuration("PAYMENT_DELAY_MS", 2000),
		CatalogDelay: getDuration("CATALOG_DELAY_MS", 0),
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallbackMS int) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(fallbackMS) * time.Millisecond
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return time.Duration(fallbackMS) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}
