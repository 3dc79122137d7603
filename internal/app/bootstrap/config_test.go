package bootstrap

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigDefaultsAndEnvOverrides(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "theme-packages")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "50")
	t.Setenv("DOWNLOAD_TTL_SECONDS", "300")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://woozio.local, https://yourtheme.com")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTPPort != 8080 {
		t.Fatalf("unexpected default port: %d", cfg.HTTPPort)
	}
	if cfg.RateLimitWindow != 15*time.Minute {
		t.Fatalf("unexpected default window: %v", cfg.RateLimitWindow)
	}
	if cfg.RateLimitMax != 50 {
		t.Fatalf("env override lost: %d", cfg.RateLimitMax)
	}
	if cfg.GrantTTL != 5*time.Minute {
		t.Fatalf("unexpected grant ttl: %v", cfg.GrantTTL)
	}
	if cfg.S3Bucket != "theme-packages" {
		t.Fatalf("unexpected bucket: %s", cfg.S3Bucket)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[0] != "https://woozio.local" {
		t.Fatalf("unexpected origins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoadConfigFileValues(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "")
	path := filepath.Join(t.TempDir(), "default.yaml")
	content := `
service:
  id: download-service-eu
  http_port: 9090
s3:
  bucket: eu-packages
  region: eu-west-1
rate_limit:
  window_minutes: 5
  max_requests: 10
download:
  grant_ttl_seconds: 120
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceID != "download-service-eu" || cfg.HTTPPort != 9090 {
		t.Fatalf("unexpected service values: %+v", cfg)
	}
	if cfg.S3Bucket != "eu-packages" || cfg.S3Region != "eu-west-1" {
		t.Fatalf("unexpected s3 values: %+v", cfg)
	}
	if cfg.RateLimitWindow != 5*time.Minute || cfg.RateLimitMax != 10 {
		t.Fatalf("unexpected rate limit values: %+v", cfg)
	}
	if cfg.GrantTTL != 2*time.Minute {
		t.Fatalf("unexpected grant ttl: %v", cfg.GrantTTL)
	}
}

func TestLoadConfigRequiresBucket(t *testing.T) {
	t.Setenv("S3_BUCKET_NAME", "")
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing bucket")
	}
}
