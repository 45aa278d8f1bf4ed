package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuración del servicio y del scraper.
// Ningun campo es obligatorio: las funciones que dependen de un valor ausente quedan deshabilitadas.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	DataDir  string `env:"DATA_DIR" envDefault:"data"`

	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"120"`

	JWTSecret           string `env:"JWT_SECRET"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"15"`
	AdminPasswordHash   string `env:"ADMIN_PASSWORD_HASH"`

	ScraperBaseURL     string        `env:"SCRAPER_BASE_URL" envDefault:"https://wikisocion.github.io/content"`
	ScraperTimeout     time.Duration `env:"SCRAPER_TIMEOUT" envDefault:"15s"`
	ScraperMaxAttempts int           `env:"SCRAPER_MAX_ATTEMPTS" envDefault:"3"`
	ScraperBackoff     time.Duration `env:"SCRAPER_BACKOFF" envDefault:"2s"`
	ScraperUserAgent   string        `env:"SCRAPER_USER_AGENT" envDefault:"socionics-wiki-scraper/1.0"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
