package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

const testPasetoSecret = "MDEyMzQ1Njc4OWFiY2RlZjAxMjM0NTY3ODlhYmNkZWY="

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("MONGOSTRING", "mongodb://localhost:27017")
	t.Setenv("PASETO_SECRET", testPasetoSecret)
	for _, k := range []string{"PORT", "DB_NAME", "TOKEN_FORMAT", "JWT_SECRET", "TOKEN_TTL", "TIMEZONE",
		"CORS_ORIGINS", "JOB_INTERVAL", "SADMIN_EMAIL", "SADMIN_PASSWORD", "SEED_DEMO_DATA"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" || cfg.DBName != "employee-attendance-db" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour || cfg.JobInterval != 15*time.Minute {
		t.Errorf("durations = %s / %s", cfg.TokenTTL, cfg.JobInterval)
	}
	if len(cfg.CORSOrigins) != 3 {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
	if _, err := cfg.NewTokenIssuer(); err != nil {
		t.Errorf("NewTokenIssuer: %v", err)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("TOKEN_TTL", "2h")
	t.Setenv("JOB_INTERVAL", "5m")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("SADMIN_EMAIL", "root@example.com")
	t.Setenv("SADMIN_PASSWORD", "Sup3rSecret")

	cfg, err := load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.TokenTTL != 2*time.Hour || cfg.JobInterval != 5*time.Minute {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if strings.Join(cfg.CORSOrigins, "|") != "https://a.example.com|https://b.example.com" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
	if !cfg.SeedDemoData || cfg.SuperAdminEmail != "root@example.com" {
		t.Errorf("unexpected config %+v", cfg)
	}
}

func TestLoadYAMLFileBelowEnv(t *testing.T) {
	setBaseEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := "port: \"9000\"\ndb_name: from-file\ntimezone: UTC\ncors_origins:\n  - https://file.example.com\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("DB_NAME", "from-env")

	cfg, err := load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port = %s, want value from file", cfg.Port)
	}
	if cfg.DBName != "from-env" {
		t.Errorf("db name = %s, want env to win", cfg.DBName)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "https://file.example.com" {
		t.Errorf("cors origins = %v", cfg.CORSOrigins)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
		want   string
	}{
		{"missing mongo", func(c *AppConfig) { c.MongoString = "" }, "MONGOSTRING"},
		{"short paseto key", func(c *AppConfig) { c.PasetoSecret = "c2hvcnQ=" }, "PASETO_SECRET"},
		{"short jwt secret", func(c *AppConfig) { c.TokenFormat = "jwt"; c.JWTSecret = "x" }, "JWT_SECRET"},
		{"unknown format", func(c *AppConfig) { c.TokenFormat = "saml" }, "TOKEN_FORMAT"},
		{"bad timezone", func(c *AppConfig) { c.Timezone = "Mars/Olympus" }, "TIMEZONE"},
		{"tiny interval", func(c *AppConfig) { c.JobInterval = time.Second }, "JOB_INTERVAL"},
		{"half super-admin", func(c *AppConfig) { c.SuperAdminEmail = "root@example.com" }, "SADMIN"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.MongoString = "mongodb://localhost:27017"
			cfg.PasetoSecret = testPasetoSecret
			cfg.Timezone = "UTC"
			if err := cfg.Validate(); err != nil {
				t.Fatalf("base config invalid: %v", err)
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Validate() = %v, want error mentioning %s", err, tt.want)
			}
		})
	}
}
