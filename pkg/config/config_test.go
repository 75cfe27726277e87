package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func parse(t *testing.T, env map[string]string, args ...string) Config {
	t.Helper()
	for k, v := range env {
		t.Setenv(k, v)
	}
	var got Config
	app := &cli.App{
		Name:  "test",
		Flags: Flags(),
		Action: func(c *cli.Context) error {
			got = FromContext(c)
			return nil
		},
	}
	require.NoError(t, app.Run(append([]string{"test"}, args...)))
	return got
}

func TestFromContext_Defaults(t *testing.T) {
	cfg := parse(t, nil)
	assert.Equal(t, DefaultAddr, cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.EqualValues(t, DefaultMaxLogoBytes, cfg.MaxLogoBytes)
	assert.Equal(t, DefaultLogoPrefix, cfg.S3LogoPrefix)
	assert.False(t, cfg.StorageEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestFromContext_EnvAndFlags(t *testing.T) {
	cfg := parse(t, map[string]string{
		"DATABASE_URL": "postgres://u:p@db/invoices?sslmode=disable",
		"REDIS_ADDR":   "redis:6379",
		"CACHE_TTL":    "90m",
		"S3_BUCKET":    "invoices",
	}, "--s3-region", "eu-west-1", "--addr", ":9090")

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "postgres://u:p@db/invoices?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 90*time.Minute, cfg.CacheTTL)
	assert.Equal(t, "eu-west-1", cfg.S3Region)
	assert.True(t, cfg.StorageEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	base := Config{Addr: ":8080", CacheTTL: time.Hour, MaxLogoBytes: 1}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"missing addr", func(c *Config) { c.Addr = "" }, false},
		{"bucket without region", func(c *Config) { c.S3Bucket = "b" }, false},
		{"bucket with region", func(c *Config) { c.S3Bucket, c.S3Region = "b", "us-east-1" }, true},
		{"redis without ttl", func(c *Config) { c.RedisAddr, c.CacheTTL = "r:6379", 0 }, false},
		{"zero logo limit", func(c *Config) { c.MaxLogoBytes = 0 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if tt.ok {
				assert.NoError(t, cfg.Validate())
			} else {
				assert.Error(t, cfg.Validate())
			}
		})
	}
}
