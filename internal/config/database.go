package config

import (
	"fmt"
)

// PostgresConfig holds the database connection settings.
type PostgresConfig struct {
	Host     string `yaml:"host" env:"EXERCITA_POSTGRES_HOST" env-default:"localhost"`
	Port     int    `yaml:"port" env:"EXERCITA_POSTGRES_PORT" env-default:"5432"`
	User     string `yaml:"user" env:"EXERCITA_POSTGRES_USER" env-default:"postgres"`
	Password string `yaml:"password" env:"EXERCITA_POSTGRES_PASSWORD" env-default:"postgres"`
	Database string `yaml:"database" env:"EXERCITA_POSTGRES_DB" env-default:"exercita365"`
	MinConn  int    `yaml:"min_conn" env:"EXERCITA_POSTGRES_MIN_CONN" env-default:"1"`
	MaxConn  int    `yaml:"max_conn" env:"EXERCITA_POSTGRES_MAX_CONN" env-default:"10"`
}

// GetDSN returns the PostgreSQL connection string.
func (p *PostgresConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.Database)
}

// GetConnectionURL returns the URL form used by migrations.
func (p *PostgresConfig) GetConnectionURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Database)
}
