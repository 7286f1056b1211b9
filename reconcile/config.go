package reconcile

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	CacheTTL  time.Duration `envconfig:"FRONTDESK_RECONCILE_CACHE_TTL" default:"5m"`
	CacheSize int           `envconfig:"FRONTDESK_RECONCILE_CACHE_SIZE" default:"32"`
	// MaxPoolSize caps the number of forms loaded into one matching pass.
	MaxPoolSize int `envconfig:"FRONTDESK_RECONCILE_MAX_POOL_SIZE" default:"2000"`
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
