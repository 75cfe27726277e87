// Package config binds command line flags and environment variables to the
// service configuration.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

const (
	DefaultAddr         = ":8080"
	DefaultCacheTTL     = 24 * time.Hour
	DefaultMaxLogoBytes = 2 << 20
	DefaultLogoPrefix   = "logos/"
	DefaultPDFPrefix    = "invoices/"
)

// Config is the resolved service configuration.
type Config struct {
	Addr      string
	LogLevel  string
	LogFormat string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	S3Bucket        string
	S3Region        string
	S3PublicBaseURL string
	S3LogoPrefix    string
	S3PDFPrefix     string
	MaxLogoBytes    int64
}

// Flags returns every configuration flag, each bound to its environment variable.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "addr", Value: DefaultAddr, Usage: "HTTP listen address", EnvVars: []string{"HTTP_ADDR"}},
		&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", EnvVars: []string{"LOG_LEVEL"}},
		&cli.StringFlag{Name: "log-format", Value: "json", Usage: "json or console", EnvVars: []string{"LOG_FORMAT"}},
		&cli.StringFlag{Name: "database-url", Usage: "PostgreSQL connection URL", EnvVars: []string{"DATABASE_URL"}},
		&cli.StringFlag{Name: "redis-addr", Usage: "Redis address for the PDF cache", EnvVars: []string{"REDIS_ADDR"}},
		&cli.StringFlag{Name: "redis-password", EnvVars: []string{"REDIS_PASSWORD"}},
		&cli.IntFlag{Name: "redis-db", EnvVars: []string{"REDIS_DB"}},
		&cli.DurationFlag{Name: "cache-ttl", Value: DefaultCacheTTL, Usage: "rendered PDF cache lifetime", EnvVars: []string{"CACHE_TTL"}},
		&cli.StringFlag{Name: "s3-bucket", Usage: "bucket for logos and archived PDFs", EnvVars: []string{"S3_BUCKET"}},
		&cli.StringFlag{Name: "s3-region", EnvVars: []string{"AWS_REGION"}},
		&cli.StringFlag{Name: "s3-public-url", Usage: "public base URL of the bucket", EnvVars: []string{"S3_PUBLIC_BASE_URL"}},
		&cli.StringFlag{Name: "s3-logo-prefix", Value: DefaultLogoPrefix, EnvVars: []string{"S3_LOGO_PREFIX"}},
		&cli.StringFlag{Name: "s3-pdf-prefix", Value: DefaultPDFPrefix, EnvVars: []string{"S3_PDF_PREFIX"}},
		&cli.Int64Flag{Name: "max-logo-bytes", Value: DefaultMaxLogoBytes, EnvVars: []string{"MAX_LOGO_BYTES"}},
	}
}

// FromContext reads the flags registered by Flags.
func FromContext(c *cli.Context) Config {
	return Config{
		Addr:            c.String("addr"),
		LogLevel:        c.String("log-level"),
		LogFormat:       c.String("log-format"),
		DatabaseURL:     c.String("database-url"),
		RedisAddr:       c.String("redis-addr"),
		RedisPassword:   c.String("redis-password"),
		RedisDB:         c.Int("redis-db"),
		CacheTTL:        c.Duration("cache-ttl"),
		S3Bucket:        c.String("s3-bucket"),
		S3Region:        c.String("s3-region"),
		S3PublicBaseURL: c.String("s3-public-url"),
		S3LogoPrefix:    c.String("s3-logo-prefix"),
		S3PDFPrefix:     c.String("s3-pdf-prefix"),
		MaxLogoBytes:    c.Int64("max-logo-bytes"),
	}
}

// Validate checks the combinations the server cannot start without.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if c.S3Bucket != "" && c.S3Region == "" {
		errs = append(errs, errors.New("s3-region is required when s3-bucket is set"))
	}
	if c.RedisAddr != "" && c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("cache-ttl must be positive, got %s", c.CacheTTL))
	}
	if c.MaxLogoBytes <= 0 {
		errs = append(errs, fmt.Errorf("max-logo-bytes must be positive, got %d", c.MaxLogoBytes))
	}
	return errors.Join(errs...)
}

// StorageEnabled reports whether S3 uploads are configured.
func (c Config) StorageEnabled() bool { return c.S3Bucket != "" }
