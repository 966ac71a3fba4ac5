package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// App holds the runtime configuration, read from the environment.
type App struct {
	HTTPPort  string        `envconfig:"HTTP_PORT" default:"8080"`
	JWTSecret string        `envconfig:"JWT_SECRET" required:"true"`
	JWTTTL    time.Duration `envconfig:"JWT_TTL" default:"168h"`
}

// Load reads the configuration from the environment.
func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
