package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config carries every environment-driven setting. It is loaded once in main
// and handed to each component's constructor; nothing reads the environment
// after startup.
type Config struct {
	Port int `env:"PORT" env-default:"5000"`

	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBUser     string `env:"DB_USER" env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" env-default:"voter_mngmt"`
	DBPort     int    `env:"DB_PORT" env-default:"5432"`

	TokenSecret    string        `env:"TOKEN_KEY" env-required:"true"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" env-default:"24h"`
	ClientOrigin   string        `env:"CLIENT_URL" env-default:"http://localhost:3000"`
	GoogleClientID string        `env:"GOOGLE_CLIENT_ID"`
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load(".env")

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}
