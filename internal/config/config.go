package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration for the panel.
type Config struct {
	App        AppConfig        `yaml:"app"`
	Backend    BackendConfig    `yaml:"backend"`
	Redis      RedisConfig      `yaml:"redis"`
	TokenStore TokenStoreConfig `yaml:"token_store"`
	Logger     LoggerConfig     `yaml:"logger"`
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string `yaml:"name"`
	Env                   string `yaml:"env"`
	Host                  string `yaml:"host"`
	Port                  string `yaml:"port"`
	Version               string `yaml:"version"`
	RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
}

// BackendConfig locates the travel-platform API this panel is a client of.
type BackendConfig struct {
	BaseURL              string `yaml:"base_url"`
	ClientTimeoutSeconds int    `yaml:"client_timeout_seconds"`
}

// RedisConfig holds Redis connection values. An empty Addr means the panel
// runs with in-memory token storage and tokens do not survive a restart.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// TokenStoreConfig namespaces the persisted token keys so the admin surface
// never collides with end-user session keys.
type TokenStoreConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from environment variables, applying defaults
// where possible. If PANEL_CONFIG names a YAML file, its values overlay the
// environment-derived configuration.
func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "travel-admin-panel"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Backend: BackendConfig{
			BaseURL:              getEnv("BACKEND_BASE_URL", "http://127.0.0.1:3000/api"),
			ClientTimeoutSeconds: getEnvAsInt("BACKEND_CLIENT_TIMEOUT_SECONDS", 10),
		},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		TokenStore: TokenStoreConfig{
			KeyPrefix: getEnv("TOKEN_STORE_KEY_PREFIX", "admin"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if path := os.Getenv("PANEL_CONFIG"); path != "" {
		if err := overlayFile(cfg, path); err != nil {
			return nil, fmt.Errorf("load PANEL_CONFIG: %w", err)
		}
	}

	return cfg, nil
}

func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// ClientTimeout returns the timeout applied to outbound backend calls.
func (b BackendConfig) ClientTimeout() time.Duration {
	if b.ClientTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(b.ClientTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
