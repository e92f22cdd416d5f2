package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds everything the CLI needs, loaded from the environment. A
// .env file in the working directory is honoured when present.
type Config struct {
	APIKey    string `env:"OPENTOK_API_KEY,required,notEmpty"`
	APISecret string `env:"OPENTOK_API_SECRET,required,notEmpty"`
	APIURL    string `env:"OPENTOK_API_URL" envDefault:"https://api.opentok.com"`

	Env       string `env:"ENV" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadConfig reads configuration from the environment, preferring real
// environment variables over a local .env file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}
