package keepnote

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters, loaded from the
// environment. The store URL and signing secret are required; startup
// fails cleanly when either is absent rather than running
// unauthenticated against nothing.
type Config struct {
	ServerPort string    `env:"PORT" envDefault:"8080"`
	LogPath    string    `env:"LOG_PATH"`
	BcryptCost int       `env:"BCRYPT_COST" envDefault:"5"`
	SurrealDB  SurrealDB `envPrefix:"SURREALDB_"`
	JWT        JWT       `envPrefix:"JWT_"`
}

// SurrealDB contains document-store connection parameters.
type SurrealDB struct {
	URL       string `env:"URL,notEmpty"`
	Namespace string `env:"NS" envDefault:"keepnote"`
	Database  string `env:"DB" envDefault:"keepnote"`
	Username  string `env:"USER"`
	Password  string `env:"PASS"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret string `env:"SECRET,notEmpty"`
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
