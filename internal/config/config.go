package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/osse101/PluginKit_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port int `validate:"min=1,max=65535"`

	// APIKey guards /api routes when set
	APIKey         string
	TrustedProxies []string `validate:"dive,ip"`
	RateLimit      int      `validate:"gte=0"`

	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	Environment string `validate:"required"`

	PluginName    string `validate:"required,max=64"`
	PluginVersion string

	UpdateCheckEnabled bool
	CurseProjectID     string        `validate:"omitempty,numeric"`
	BukkitDevSlug      string        `validate:"required,max=64"`
	UpdateAPIURL       string        `validate:"omitempty,url"`
	UpdatePermission   string        `validate:"max=128"`
	UpdateCheckPeriod  time.Duration `validate:"gte=0"`

	RegistryPath        string
	ItemCacheSize       int `validate:"min=1"`
	PlaceholderMaterial bool

	WorkerCount     int           `validate:"min=1,max=64"`
	WorkerQueueSize int           `validate:"min=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),

		APIKey:         getEnv(EnvAPIKey, ""),
		TrustedProxies: getEnvAsList(EnvTrustedProxies),
		RateLimit:      getEnvAsInt(EnvRateLimit, DefaultRateLimit),

		PluginName:    getEnv(EnvPluginName, DefaultPluginName),
		PluginVersion: getEnv(EnvPluginVersion, DefaultPluginVersion),

		UpdateCheckEnabled: getEnvAsBool(EnvUpdateCheckEnabled, DefaultUpdateCheckEnabled),
		CurseProjectID:     getEnv(EnvCurseProjectID, ""),
		UpdateAPIURL:       getEnv(EnvUpdateAPIURL, ""),
		UpdatePermission:   getEnv(EnvUpdatePermission, ""),
		UpdateCheckPeriod:  getEnvAsDuration(EnvUpdateCheckPeriod, 0),

		RegistryPath:        getEnv(EnvRegistryPath, ""),
		ItemCacheSize:       getEnvAsInt(EnvItemCacheSize, DefaultItemCacheSize),
		PlaceholderMaterial: getEnvAsBool(EnvPlaceholderMaterial, false),

		WorkerCount:     getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
		WorkerQueueSize: getEnvAsInt(EnvWorkerQueueSize, DefaultWorkerQueueSize),
		ShutdownTimeout: getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
	}
	cfg.BukkitDevSlug = getEnv(EnvBukkitDevSlug, strings.ToLower(cfg.PluginName))

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	return cfg, nil
}

// Validate checks the loaded values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf(ErrMsgInvalidConfig, domain.ErrInvalidConfig, err)
	}
	return nil
}

// Addr returns the HTTP listen address
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an integer environment variable or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves a boolean environment variable or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration retrieves a duration environment variable or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
