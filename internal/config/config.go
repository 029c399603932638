package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App       AppConfig
	Store     StoreConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Assistant AssistantConfig
	Auth      AuthConfig
	Seed      SeedConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type StoreConfig struct {
	Driver string
	Path   string
}

type DatabaseConfig struct {
	Host           string
	Port           string
	Name           string
	User           string
	Password       string
	SSLMode        string
	ConnectTimeout time.Duration
	PoolMaxConns   int32
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type AssistantConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Timeout     time.Duration
	SnapshotTTL time.Duration
}

type AuthConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration

	AdminEmail        string
	AdminPasswordHash string
}

type SeedConfig struct {
	BulkSkillsPath string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, def string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		return v
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return def
		}
		return d
	}
	optInt32 := func(key string, def int32) int32 {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		n, err := strconv.ParseInt(v, 10, 32)
		if err != nil {
			return def
		}
		return int32(n)
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Store = StoreConfig{
		Driver: opt("STORE_DRIVER", StoreDriverFile),
		Path:   opt("STORE_PATH", "data/skills-radar.json"),
	}

	cfg.Database = DatabaseConfig{
		Host:           opt("DB_HOST", ""),
		Port:           opt("DB_PORT", "5432"),
		Name:           opt("DB_NAME", ""),
		User:           opt("DB_USER", ""),
		Password:       os.Getenv("DB_PASSWORD"),
		SSLMode:        opt("DB_SSL_MODE", "disable"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   optInt32("DB_POOL_MAX_CONNS", 4),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST", ""),
		Port:     opt("REDIS_PORT", "6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}

	cfg.Assistant = AssistantConfig{
		APIKey:      opt("OPENAI_API_KEY", ""),
		BaseURL:     opt("OPENAI_BASE_URL", ""),
		Model:       opt("OPENAI_MODEL", "gpt-4o-mini"),
		Timeout:     optDuration("ASSISTANT_TIMEOUT", 30*time.Second),
		SnapshotTTL: optDuration("ASSISTANT_SNAPSHOT_TTL", 10*time.Minute),
	}

	cfg.Auth = AuthConfig{
		AccessSecret:      req("JWT_ACCESS_SECRET"),
		RefreshSecret:     req("JWT_REFRESH_SECRET"),
		AccessExpiresIn:   optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn:  optDuration("JWT_REFRESH_EXPIRES_IN", 168*time.Hour),
		AdminEmail:        opt("ADMIN_EMAIL", ""),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}

	cfg.Seed = SeedConfig{
		BulkSkillsPath: opt("SEED_BULK_SKILLS_PATH", "data/bulk-skills.json"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	switch cfg.Store.Driver {
	case StoreDriverFile, StoreDriverPostgres, StoreDriverMemory:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}

	return cfg, nil
}
