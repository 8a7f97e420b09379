package config

import (
	"library-catalog/internal/infrastructure/database"
)

// PostgresConfig converts the database section into pool settings.
func (c *Config) PostgresConfig() *database.DBConfig {
	d := c.Database
	return &database.DBConfig{
		Host:              d.Host,
		Port:              d.Port,
		Username:          d.User,
		Password:          d.Password,
		DBName:            d.Name,
		SSLMode:           d.SSLMode,
		MaxConns:          int32(d.MaxConns),
		MinConns:          int32(d.MinConns),
		MaxConnLifetime:   d.MaxConnLifetime,
		MaxConnIdleTime:   d.MaxConnIdleTime,
		HealthCheckPeriod: d.HealthCheckPeriod,
		MaxRetries:        d.MaxRetries,
		RetryDelay:        d.RetryDelay,
		ConnectTimeout:    d.ConnectTimeout,
	}
}
