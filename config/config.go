package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Env     string `validate:"required"`
	Server  ServerConfig
	Backend BackendConfig
	UI      UIConfig
}

type ServerConfig struct {
	Host         string        `validate:"required"`
	Port         int           `validate:"gte=1,lte=65535"`
	ReadTimeout  time.Duration `validate:"gt=0"`
	WriteTimeout time.Duration `validate:"gt=0"`
	IdleTimeout  time.Duration `validate:"gt=0"`
}

// BackendConfig describes the external proposals API this app renders.
type BackendConfig struct {
	BaseURL            string        `validate:"required,url"`
	Timeout            time.Duration `validate:"gt=0"`
	CacheTTL           time.Duration `validate:"gte=0"`
	TokenPath          string
	RateLimitPerMinute int `validate:"gte=1"`
	RateLimitBurst     int `validate:"gte=1"`
}

type UIConfig struct {
	SearchDebounce  time.Duration `validate:"gte=0"`
	SessionTTL      time.Duration `validate:"gt=0"`
	DefaultPageSize int           `validate:"gte=1,lte=100"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from the environment and an optional .env file.
func Load() (Config, error) {
	cfg := Config{}

	if err := loadEnv(); err != nil {
		return cfg, err
	}

	cfg.Env = getEnv("APP_ENV", "local")

	serverPort, err := parseIntEnv("SERVER_PORT", 8090)
	if err != nil {
		return cfg, err
	}
	readTimeout, err := parseDurationEnv("SERVER_READ_TIMEOUT", 5*time.Second)
	if err != nil {
		return cfg, err
	}
	writeTimeout, err := parseDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second)
	if err != nil {
		return cfg, err
	}
	idleTimeout, err := parseDurationEnv("SERVER_IDLE_TIMEOUT", 60*time.Second)
	if err != nil {
		return cfg, err
	}

	cfg.Server = ServerConfig{
		Host:         getEnv("SERVER_HOST", "0.0.0.0"),
		Port:         serverPort,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	baseURL := getEnv("BACKEND_BASE_URL", "http://localhost:8000/api")

	backendTimeout, err := parseDurationEnv("BACKEND_TIMEOUT", 15*time.Second)
	if err != nil {
		return cfg, err
	}
	cacheTTL, err := parseDurationEnv("BACKEND_CACHE_TTL", 5*time.Minute)
	if err != nil {
		return cfg, err
	}
	ratePerMinute, err := parseIntEnv("BACKEND_RATE_LIMIT_PER_MINUTE", 300)
	if err != nil {
		return cfg, err
	}
	rateBurst, err := parseIntEnv("BACKEND_RATE_LIMIT_BURST", 30)
	if err != nil {
		return cfg, err
	}

	cfg.Backend = BackendConfig{
		BaseURL:            baseURL,
		Timeout:            backendTimeout,
		CacheTTL:           cacheTTL,
		TokenPath:          getEnv("BACKEND_TOKEN_PATH", ""),
		RateLimitPerMinute: ratePerMinute,
		RateLimitBurst:     rateBurst,
	}

	searchDebounce, err := parseDurationEnv("UI_SEARCH_DEBOUNCE", 300*time.Millisecond)
	if err != nil {
		return cfg, err
	}
	sessionTTL, err := parseDurationEnv("UI_SESSION_TTL", 12*time.Hour)
	if err != nil {
		return cfg, err
	}
	pageSize, err := parseIntEnv("UI_DEFAULT_PAGE_SIZE", 20)
	if err != nil {
		return cfg, err
	}

	cfg.UI = UIConfig{
		SearchDebounce:  searchDebounce,
		SessionTTL:      sessionTTL,
		DefaultPageSize: pageSize,
	}

	if err := validate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func loadEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}

func parseDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a duration: %w", key, err)
	}
	return d, nil
}
