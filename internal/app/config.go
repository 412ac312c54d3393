// Package app holds process configuration.
package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from the environment. Credentials have no embedded
// defaults; when unset the store is contacted without authentication.
type Config struct {
	Addr            string        `envconfig:"SHELTERBOARD_ADDR" default:":8050"`
	ShutdownTimeout time.Duration `envconfig:"SHELTERBOARD_SHUTDOWN_TIMEOUT" default:"5s"`

	MongoURI        string `envconfig:"SHELTERBOARD_MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase   string `envconfig:"SHELTERBOARD_MONGO_DATABASE" default:"aac"`
	MongoCollection string `envconfig:"SHELTERBOARD_MONGO_COLLECTION" default:"animals"`

	Username string `envconfig:"SHELTERBOARD_USERNAME"`
	Password string `envconfig:"SHELTERBOARD_PASSWORD"`

	LogLevel string `envconfig:"SHELTERBOARD_LOG_LEVEL" default:"info"`
}

func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
