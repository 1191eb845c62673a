package config

import (
	"fmt"
	"time"
)

// HTTPConfig holds the HTTP server settings.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"EXERCITA_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"EXERCITA_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"EXERCITA_HTTP_READ_TIMEOUT" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"EXERCITA_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// GetAddress returns the HTTP listen address.
func (c *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
