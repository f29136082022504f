package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel string   `env:"LOG_LEVEL" envDefault:"info"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	CORS     CORS     `envPrefix:"CORS_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains database connection parameters. The DSN has no
// default: the process must not come up pointed at a guessed database.
type Database struct {
	DSN string `env:"DSN,required,notEmpty"`
}

// JWT contains token signing parameters. The secret has no default: a
// process started without one refuses to serve traffic.
type JWT struct {
	Secret   string        `env:"SECRET,required,notEmpty"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"168h"`
}

// CORS contains allowed browser origins, comma-separated. Empty means
// any origin.
type CORS struct {
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
