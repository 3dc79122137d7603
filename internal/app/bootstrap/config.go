package bootstrap

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration for the download service.
// It merges file defaults and environment overrides to support both local and
// deployed runs.
type Config struct {
	ServiceID string

	HTTPPort           int
	CORSAllowedOrigins []string

	LicenseCataloguePath string
	RedisURL             string

	S3Endpoint        string
	S3Region          string
	S3Bucket          string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3ForcePathStyle  bool

	GrantTTL    time.Duration
	SignTimeout time.Duration

	RateLimitWindow time.Duration
	RateLimitMax    int

	LogLevel string
}

// configFile mirrors the YAML schema used by configs/default.yaml.
type configFile struct {
	Service struct {
		ID       string `yaml:"id"`
		HTTPPort int    `yaml:"http_port"`
	} `yaml:"service"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`
	Licenses struct {
		Path string `yaml:"path"`
	} `yaml:"licenses"`
	Dependencies struct {
		RedisURL string `yaml:"redis_url"`
	} `yaml:"dependencies"`
	S3 struct {
		Endpoint        string `yaml:"endpoint"`
		Region          string `yaml:"region"`
		Bucket          string `yaml:"bucket"`
		AccessKeyID     string `yaml:"access_key_id"`
		SecretAccessKey string `yaml:"secret_access_key"`
		ForcePathStyle  bool   `yaml:"force_path_style"`
	} `yaml:"s3"`
	Download struct {
		GrantTTLSeconds    int `yaml:"grant_ttl_seconds"`
		SignTimeoutSeconds int `yaml:"sign_timeout_seconds"`
	} `yaml:"download"`
	RateLimit struct {
		WindowMinutes int `yaml:"window_minutes"`
		MaxRequests   int `yaml:"max_requests"`
	} `yaml:"rate_limit"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// LoadConfig resolves configuration in priority order: defaults -> file -> env.
func LoadConfig(path string) (Config, error) {
	cfg := Config{
		ServiceID:            "download-service",
		HTTPPort:             8080,
		CORSAllowedOrigins:   []string{"*"},
		LicenseCataloguePath: "configs/licenses.yaml",
		S3Region:             "us-east-1",
		GrantTTL:             10 * time.Minute,
		SignTimeout:          5 * time.Second,
		RateLimitWindow:      15 * time.Minute,
		RateLimitMax:         30,
		LogLevel:             "info",
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		var f configFile
		if unmarshalErr := yaml.Unmarshal(raw, &f); unmarshalErr != nil {
			return Config{}, fmt.Errorf("parse config file: %w", unmarshalErr)
		}
		if f.Service.ID != "" {
			cfg.ServiceID = f.Service.ID
		}
		if f.Service.HTTPPort > 0 {
			cfg.HTTPPort = f.Service.HTTPPort
		}
		if len(f.CORS.AllowedOrigins) > 0 {
			cfg.CORSAllowedOrigins = f.CORS.AllowedOrigins
		}
		if f.Licenses.Path != "" {
			cfg.LicenseCataloguePath = f.Licenses.Path
		}
		if f.Dependencies.RedisURL != "" {
			cfg.RedisURL = f.Dependencies.RedisURL
		}
		if f.S3.Endpoint != "" {
			cfg.S3Endpoint = f.S3.Endpoint
		}
		if f.S3.Region != "" {
			cfg.S3Region = f.S3.Region
		}
		if f.S3.Bucket != "" {
			cfg.S3Bucket = f.S3.Bucket
		}
		if f.S3.AccessKeyID != "" {
			cfg.S3AccessKeyID = f.S3.AccessKeyID
		}
		if f.S3.SecretAccessKey != "" {
			cfg.S3SecretAccessKey = f.S3.SecretAccessKey
		}
		if f.S3.ForcePathStyle {
			cfg.S3ForcePathStyle = true
		}
		if f.Download.GrantTTLSeconds > 0 {
			cfg.GrantTTL = time.Duration(f.Download.GrantTTLSeconds) * time.Second
		}
		if f.Download.SignTimeoutSeconds > 0 {
			cfg.SignTimeout = time.Duration(f.Download.SignTimeoutSeconds) * time.Second
		}
		if f.RateLimit.WindowMinutes > 0 {
			cfg.RateLimitWindow = time.Duration(f.RateLimit.WindowMinutes) * time.Minute
		}
		if f.RateLimit.MaxRequests > 0 {
			cfg.RateLimitMax = f.RateLimit.MaxRequests
		}
		if f.Log.Level != "" {
			cfg.LogLevel = f.Log.Level
		}
	}

	cfg.HTTPPort = envInt("HTTP_PORT", cfg.HTTPPort)
	cfg.CORSAllowedOrigins = envCSV("CORS_ALLOWED_ORIGINS", cfg.CORSAllowedOrigins)
	cfg.LicenseCataloguePath = envOrDefault("LICENSES_PATH", cfg.LicenseCataloguePath)
	cfg.RedisURL = envOrDefault("REDIS_URL", cfg.RedisURL)
	cfg.S3Endpoint = envOrDefault("S3_ENDPOINT", cfg.S3Endpoint)
	cfg.S3Region = envOrDefault("S3_REGION", cfg.S3Region)
	cfg.S3Bucket = envOrDefault("S3_BUCKET_NAME", cfg.S3Bucket)
	cfg.S3AccessKeyID = envOrDefault("S3_ACCESS_KEY_ID", cfg.S3AccessKeyID)
	cfg.S3SecretAccessKey = envOrDefault("S3_SECRET_ACCESS_KEY", cfg.S3SecretAccessKey)
	cfg.S3ForcePathStyle = envBool("S3_FORCE_PATH_STYLE", cfg.S3ForcePathStyle)
	cfg.GrantTTL = time.Duration(envInt("DOWNLOAD_TTL_SECONDS", int(cfg.GrantTTL.Seconds()))) * time.Second
	cfg.SignTimeout = time.Duration(envInt("SIGN_TIMEOUT_SECONDS", int(cfg.SignTimeout.Seconds()))) * time.Second
	cfg.RateLimitWindow = time.Duration(envInt("RATE_LIMIT_WINDOW_MINUTES", int(cfg.RateLimitWindow.Minutes()))) * time.Minute
	cfg.RateLimitMax = envInt("RATE_LIMIT_MAX_REQUESTS", cfg.RateLimitMax)
	cfg.LogLevel = envOrDefault("LOG_LEVEL", cfg.LogLevel)

	if cfg.S3Bucket == "" {
		return Config{}, fmt.Errorf("missing S3_BUCKET_NAME")
	}

	return cfg, nil
}

// envOrDefault returns an env var when present, otherwise the provided fallback.
func envOrDefault(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// envInt parses integer env vars with safe fallback on empty/invalid values.
func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// envBool parses common boolean env forms while keeping a deterministic fallback.
func envBool(name string, fallback bool) bool {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return fallback
	}
}

// envCSV parses comma-separated env vars and removes empty segments.
func envCSV(name string, fallback []string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parts := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		parts = append(parts, trimmed)
	}
	if len(parts) == 0 {
		return fallback
	}
	return parts
}
