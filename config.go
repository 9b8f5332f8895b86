package chatauth

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is loaded once at startup and passed explicitly into the
// components that need it. JWTSecret is required: starting without a
// signing secret would make every issued token forgeable.
type Config struct {
	Addr       string `env:"ADDR" envDefault:":2000"`
	MongoURI   string `env:"MONGO_URI" envDefault:"mongodb://127.0.0.1:27017"`
	Database   string `env:"MONGO_DB" envDefault:"chat"`
	Collection string `env:"MONGO_COLLECTION" envDefault:"users"`
	JWTSecret  string `env:"JWT_SECRET,required,notEmpty"`
	BcryptCost int    `env:"BCRYPT_COST" envDefault:"10"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
