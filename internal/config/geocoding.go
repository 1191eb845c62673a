package config

import "time"

// GeocodingConfig holds the settings of the external geocoding lookup. The
// timeout bounds the outbound call so a slow upstream cannot occupy workers
// indefinitely.
type GeocodingConfig struct {
	BaseURL   string        `yaml:"base_url" env:"EXERCITA_GEOCODING_BASE_URL" env-default:"https://nominatim.openstreetmap.org"`
	Timeout   time.Duration `yaml:"timeout" env:"EXERCITA_GEOCODING_TIMEOUT" env-default:"5s"`
	UserAgent string        `yaml:"user_agent" env:"EXERCITA_GEOCODING_USER_AGENT" env-default:"exercita365b/1.0"`
	CacheTTL  time.Duration `yaml:"cache_ttl" env:"EXERCITA_GEOCODING_CACHE_TTL" env-default:"24h"`
}
