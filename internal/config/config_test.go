package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		GoEnv:          "development",
		HTTPPort:       8080,
		JWTSecret:      strings.Repeat("k", 32),
		JWTExpiry:      24 * time.Hour,
		LogLevel:       "info",
		LogFormat:      "json",
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		StorageDriver:  "local",
		UploadMaxSize:  "10MB",
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", strings.Repeat("s", 40))
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "local", cfg.StorageDriver)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad port", func(c *Config) { c.HTTPPort = 0 }, "HTTP_PORT"},
		{"bad level", func(c *Config) { c.LogLevel = "trace" }, "LOG_LEVEL"},
		{"short secret", func(c *Config) { c.JWTSecret = "short" }, "JWT_SECRET"},
		{"s3 without bucket", func(c *Config) { c.StorageDriver = "s3" }, "S3_BUCKET"},
		{"bad size", func(c *Config) { c.UploadMaxSize = "lots" }, "UPLOAD_MAX_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestUploadMaxBytes(t *testing.T) {
	cfg := validConfig()
	cfg.UploadMaxSize = "2MB"
	assert.Equal(t, int64(2_000_000), cfg.UploadMaxBytes())
}
