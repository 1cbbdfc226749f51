package config

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	Postgres struct {
		Port    int    `env:"POSTGRES_PORT"`
		Host    string `env:"POSTGRES_HOST"`
		User    string `env:"POSTGRES_USER"`
		Pass    string `env:"POSTGRES_PASS"`
		Name    string `env:"POSTGRES_NAME"`
		SslMode string `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	}
	Backend struct {
		BaseURL string        `env:"BACKEND_API_URL"`
		Timeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"15s"`
	}
	Telegram struct {
		User    int64  `env:"TELEGRAM_USER"`
		Token   string `env:"TELEGRAM_TOKEN"`
		Channel string `env:"TELEGRAM_CHANNEL"`
	}
	Generator struct {
		Delay time.Duration `env:"GENERATOR_DELAY" env-default:"2s"`
	}
	Publisher struct {
		Interval         time.Duration `env:"PUBLISHER_INTERVAL" env-default:"1m"`
		CleanupOlderThan time.Duration `env:"PUBLISHER_CLEANUP_OLDER_THAN" env-default:"720h"`
	}
	RateLimit struct {
		Requests int           `env:"RATE_LIMIT_REQUESTS" env-default:"10"`
		Per      time.Duration `env:"RATE_LIMIT_PER" env-default:"1s"`
		Burst    int           `env:"RATE_LIMIT_BURST" env-default:"20"`
	}
}

// GetDSN returns the postgres connection string in keyword/value form.
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Postgres.Host,
		c.Postgres.Port,
		c.Postgres.User,
		c.Postgres.Pass,
		c.Postgres.Name,
		c.Postgres.SslMode,
	)
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
