package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"employee-attendance/pkg/logging"
	"employee-attendance/pkg/token"
)

// ConfigPathEnvVar overrides the YAML config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

type AppConfig struct {
	Port               string        `koanf:"port"`
	MongoString        string        `koanf:"mongostring"`
	DBName             string        `koanf:"db_name"`
	TokenFormat        string        `koanf:"token_format"`
	PasetoSecret       string        `koanf:"paseto_secret"`
	JWTSecret          string        `koanf:"jwt_secret"`
	TokenTTL           time.Duration `koanf:"token_ttl"`
	SuperAdminEmail    string        `koanf:"sadmin_email"`
	SuperAdminPassword string        `koanf:"sadmin_password"`
	Timezone           string        `koanf:"timezone"`
	CORSOrigins        []string      `koanf:"cors_origins"`
	LogLevel           string        `koanf:"log_level"`
	LogFormat          string        `koanf:"log_format"`
	JobInterval        time.Duration `koanf:"job_interval"`
	HolidayFeedURL     string        `koanf:"holiday_feed_url"`
	SeedDemoData       bool          `koanf:"seed_demo_data"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Port:        "3000",
		DBName:      "employee-attendance-db",
		TokenFormat: token.FormatPaseto,
		TokenTTL:    24 * time.Hour,
		Timezone:    "Asia/Jakarta",
		CORSOrigins: []string{
			"http://localhost:5173",
			"http://localhost:4173",
			"http://127.0.0.1:5173",
		},
		LogLevel:    "info",
		LogFormat:   "json",
		JobInterval: 15 * time.Minute,
	}
}

// knownKeys are the environment variables read into AppConfig, lowercased.
var knownKeys = map[string]bool{
	"port": true, "mongostring": true, "db_name": true,
	"token_format": true, "paseto_secret": true, "jwt_secret": true, "token_ttl": true,
	"sadmin_email": true, "sadmin_password": true,
	"timezone": true, "cors_origins": true,
	"log_level": true, "log_format": true,
	"job_interval": true, "holiday_feed_url": true, "seed_demo_data": true,
}

var sliceConfigPaths = []string{"cors_origins"}

// LoadConfig reads .env (if present) into the environment and then layers
// defaults, the optional YAML file and environment variables.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logging.Warn().Err(err).Msg("could not load .env file (might not exist in production)")
	}
	return load()
}

func load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, err
	}

	cfg := &AppConfig{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

func envTransformFunc(key string) string {
	key = strings.ToLower(key)
	if !knownKeys[key] {
		return ""
	}
	return key
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		parts := strings.Split(s, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

func (c *AppConfig) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.MongoString == "" {
		errs = append(errs, errors.New("MONGOSTRING is required"))
	}
	if c.DBName == "" {
		errs = append(errs, errors.New("DB_NAME is required"))
	}
	switch strings.ToLower(c.TokenFormat) {
	case token.FormatPaseto:
		if _, err := token.DecodeKey(c.PasetoSecret); err != nil {
			errs = append(errs, err)
		}
	case token.FormatJWT:
		if len(c.JWTSecret) < 32 {
			errs = append(errs, errors.New("JWT_SECRET must be at least 32 bytes"))
		}
	default:
		errs = append(errs, fmt.Errorf("TOKEN_FORMAT must be paseto or jwt, got %q", c.TokenFormat))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, errors.New("TOKEN_TTL must be positive"))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("TIMEZONE: %w", err))
	}
	if c.JobInterval < time.Minute {
		errs = append(errs, errors.New("JOB_INTERVAL must be at least 1m"))
	}
	if (c.SuperAdminEmail == "") != (c.SuperAdminPassword == "") {
		errs = append(errs, errors.New("SADMIN_EMAIL and SADMIN_PASSWORD must be set together"))
	}
	return errors.Join(errs...)
}

// NewTokenIssuer builds the issuer selected by TOKEN_FORMAT.
func (c *AppConfig) NewTokenIssuer() (token.Issuer, error) {
	return token.New(c.TokenFormat, c.PasetoSecret, c.JWTSecret, c.TokenTTL)
}
