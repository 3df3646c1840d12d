package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Upstream service base URLs.
	CatalogURL  string `mapstructure:"CATALOG_URL"`
	IdentityURL string `mapstructure:"IDENTITY_URL"`
	CommerceURL string `mapstructure:"COMMERCE_URL"`

	// Per-call upstream timeout in seconds.
	UpstreamTimeoutSec int `mapstructure:"UPSTREAM_TIMEOUT_SEC"`

	// Cache configuration. Backend is "memory" or "redis".
	CacheBackend  string `mapstructure:"CACHE_BACKEND"`
	CacheTTLSec   int    `mapstructure:"CACHE_TTL_SEC"`
	ReportTTLSec  int    `mapstructure:"REPORT_TTL_SEC"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB  int    `mapstructure:"REDIS_CACHE_DB"`

	MaxRequestsPerMin int `mapstructure:"MAX_REQUESTS_PER_MIN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "4000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("CATALOG_URL", "http://localhost:3001/api")
	viper.SetDefault("IDENTITY_URL", "http://localhost:8000")
	viper.SetDefault("COMMERCE_URL", "http://localhost:8080")
	viper.SetDefault("UPSTREAM_TIMEOUT_SEC", 10)
	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("CACHE_TTL_SEC", 300)
	viper.SetDefault("REPORT_TTL_SEC", 600)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

// UpstreamTimeout returns the bounded per-call timeout for upstream requests.
func UpstreamTimeout() time.Duration {
	if AppConfig.UpstreamTimeoutSec <= 0 {
		return 10 * time.Second
	}
	return time.Duration(AppConfig.UpstreamTimeoutSec) * time.Second
}

// CacheTTL returns the default TTL applied to cache entries.
func CacheTTL() time.Duration {
	if AppConfig.CacheTTLSec <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(AppConfig.CacheTTLSec) * time.Second
}

// ReportTTL returns the longer TTL used for expensive aggregate report keys.
func ReportTTL() time.Duration {
	if AppConfig.ReportTTLSec <= 0 {
		return 10 * time.Minute
	}
	return time.Duration(AppConfig.ReportTTLSec) * time.Second
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
