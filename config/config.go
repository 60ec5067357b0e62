package config

import (
	"os"
	"time"

	"github.com/kyodai-travel/tourbook/internal/util"
)

type Config struct {
	DatabaseDSN string
	Addr        string
	CacheURL    string
	MQURL       string
	Env         string

	ClientSessionTTL time.Duration
	AdminSessionTTL  time.Duration
}

func LoadConfig() (*Config, error) {
	if err := util.LoadEnv(); err != nil {
		return nil, err
	}
	databaseDSN := os.Getenv("DATABASE_DSN")
	addr := os.Getenv("ADDR")
	cacheURL := os.Getenv("CACHE_URL")
	mqURL := os.Getenv("RABBIT_MQ_URL")
	env := os.Getenv("APP_ENV")
	return &Config{
		DatabaseDSN:      databaseDSN,
		Addr:             addr,
		CacheURL:         cacheURL,
		MQURL:            mqURL,
		Env:              env,
		ClientSessionTTL: durationEnv("CLIENT_SESSION_TTL", 7*24*time.Hour),
		AdminSessionTTL:  durationEnv("ADMIN_SESSION_TTL", 24*time.Hour),
	}, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
