package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ovasylenko/match-stats-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoad_YAMLValuesAndDefaults(t *testing.T) {
	yaml := `
server:
  port: 18080

logger:
  level: info
  format: json

postgres:
  host: 127.0.0.1
  user: statsuser
  password: statspass
  dbName: matchstats
  maxConns: 5

redis:
  enabled: true
  addr: 127.0.0.1:6379
`
	path := writeTempConfig(t, yaml)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 18080 {
		t.Fatalf("expected server.port 18080, got %d", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 10 {
		t.Fatalf("default shutdown timeout not applied: %d", cfg.Server.ShutdownTimeout)
	}
	if cfg.Postgres.Host != "127.0.0.1" || cfg.Postgres.User != "statsuser" || cfg.Postgres.DBName != "matchstats" {
		t.Fatalf("yaml values not loaded: %+v", cfg.Postgres)
	}
	if cfg.Postgres.Port != 5432 || cfg.Postgres.SSLMode != "disable" {
		t.Fatalf("postgres defaults not applied: %+v", cfg.Postgres)
	}
	if cfg.Postgres.MaxConns != 5 {
		t.Fatalf("expected maxConns 5, got %d", cfg.Postgres.MaxConns)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "127.0.0.1:6379" {
		t.Fatalf("redis config not loaded: %+v", cfg.Redis)
	}
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	yaml := `
logger:
  level: info
`
	path := writeTempConfig(t, yaml)
	t.Setenv("APP_POSTGRES_HOST", "db.internal")
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Postgres.Host != "db.internal" {
		t.Fatalf("env override not applied: %q", cfg.Postgres.Host)
	}
	if cfg.Server.Port != 9090 {
		t.Fatalf("env override not applied: %d", cfg.Server.Port)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	if _, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}
