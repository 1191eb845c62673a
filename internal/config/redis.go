package config

import (
	"fmt"
	"time"
)

// RedisConfig holds the settings of the geocoding result cache.
type RedisConfig struct {
	Host         string        `yaml:"host" env:"EXERCITA_REDIS_HOST" env-default:"localhost"`
	Port         int           `yaml:"port" env:"EXERCITA_REDIS_PORT" env-default:"6379"`
	Password     string        `yaml:"password" env:"EXERCITA_REDIS_PASSWORD" env-default:""`
	DB           int           `yaml:"db" env:"EXERCITA_REDIS_DB" env-default:"0"`
	PoolSize     int           `yaml:"pool_size" env:"EXERCITA_REDIS_POOL_SIZE" env-default:"10"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env:"EXERCITA_REDIS_DIAL_TIMEOUT" env-default:"5s"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"EXERCITA_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"EXERCITA_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	DefaultTTL   time.Duration `yaml:"default_ttl" env:"EXERCITA_REDIS_DEFAULT_TTL" env-default:"24h"`
}

// GetAddress returns the Redis address in host:port form.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
