package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string `env:"SERVER_PORT" envDefault:"8080"`
	LogDev     bool   `env:"LOG_DEV" envDefault:"false"`

	FirebaseDatabaseURL     string `env:"FIREBASE_DATABASE_URL"`
	FirebaseCredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`

	// UserStore selects the registry backend: "memory" or "mysql".
	UserStore string `env:"USER_STORE" envDefault:"memory"`
	MySQLDSN  string `env:"MYSQL_DSN" envDefault:"user:password@tcp(localhost:3306)/medilog?charset=utf8mb4&parseTime=True&loc=Local"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	RedisPass string `env:"REDIS_PASSWORD"`

	HistoryCacheTTL time.Duration `env:"HISTORY_CACHE_TTL" envDefault:"1m"`
	StoreTimeout    time.Duration `env:"STORE_TIMEOUT" envDefault:"10s"`
	VisionTimeout   time.Duration `env:"VISION_TIMEOUT" envDefault:"15s"`

	TipsFile    string `env:"TIPS_FILE" envDefault:"health_precautions.csv"`
	SwaggerHost string `env:"SWAGGER_HOST"`
}

// Load builds Config from environment with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
