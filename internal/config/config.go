package config

import (
	"github.com/ovasylenko/match-stats-service/internal/logger"
)

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"readTimeout"`     // seconds
	WriteTimeout    int    `mapstructure:"writeTimeout"`    // seconds
	ShutdownTimeout int    `mapstructure:"shutdownTimeout"` // seconds
}

// PostgresConfig carries connection and pool tuning for the primary store.
type PostgresConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	User              string `mapstructure:"user"`
	Password          string `mapstructure:"password"`
	DBName            string `mapstructure:"dbName"`
	SSLMode           string `mapstructure:"sslMode"`
	MaxConns          int32  `mapstructure:"maxConns"`
	MinConns          int32  `mapstructure:"minConns"`
	MaxConnLifetime   int    `mapstructure:"maxConnLifetime"`   // seconds
	MaxConnIdleTime   int    `mapstructure:"maxConnIdleTime"`   // seconds
	HealthCheckPeriod int    `mapstructure:"healthCheckPeriod"` // seconds
}

// RedisConfig carries connection settings for the aggregated-stats cache.
// Disabled means the service runs without a cache and recomputes on demand.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Postgres PostgresConfig      `mapstructure:"postgres"`
	Redis    RedisConfig         `mapstructure:"redis"`
	Logger   logger.LoggerConfig `mapstructure:"logger"`
}
