package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       App
	HTTP      HTTP
	Probe     Probe
	Metrics   Metrics
	FormState FormState
	Redis     Redis
	Postgres  Postgres
	Bot       Bot
	Logging   Logging
}

type App struct {
	Name    string `env:"APP_NAME" envDefault:"phone-input"`
	Version string `env:"APP_VERSION" envDefault:"dev"`
}

// Уровень логирования читается напрямую в cmd/main: логгер нужен раньше,
// чем загрузится конфиг.
type Logging struct {
	LogFieldMaxLen int  `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
	MaskSensitive  bool `env:"LOG_MASK_SENSITIVE" envDefault:"true"`
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	return config, nil
}
