package config

import "time"

// JWTConfig holds the token settings. Access tokens issued on login carry
// this TTL; registration tokens never expire.
type JWTConfig struct {
	SecretKey      string `yaml:"secret_key" env:"EXERCITA_JWT_SECRET_KEY" env-default:"super-secret-key-change-me-in-production"`
	AccessTokenTTL string `yaml:"access_token_ttl" env:"EXERCITA_JWT_ACCESS_TOKEN_TTL" env-default:"1h"`
	BCryptCost     int    `yaml:"bcrypt_cost" env:"EXERCITA_BCRYPT_COST" env-default:"10"`
}

// GetAccessTokenTTL returns the access token lifetime.
func (c *JWTConfig) GetAccessTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.AccessTokenTTL)
	if err != nil {
		return time.Hour
	}
	return duration
}
