// Package config reads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Environment keys.
const (
	KeyAddr         = "IMGFETCH_ADDR"
	KeyStorageDir   = "IMGFETCH_STORAGE_DIR"
	KeyHTTPTimeout  = "IMGFETCH_HTTP_TIMEOUT"
	KeyMaxRedirects = "IMGFETCH_MAX_REDIRECTS"
	KeyVerbose      = "IMGFETCH_VERBOSE"
	KeyS3Bucket     = "IMGFETCH_S3_BUCKET"
)

// Default values.
const (
	DefaultAddr         = ":8080"
	DefaultStorageDir   = "data/Pictures"
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultMaxRedirects = 10
)

const (
	imagesDirName = "downloadedImages"
	imageFileName = "downloaded_image.png"
)

// Postgres holds connection settings for the download journal.
type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// Enabled reports whether a journal database is configured.
func (p Postgres) Enabled() bool {
	return p.Host != ""
}

// DSN returns lib/pq connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s "+
		"password=%s dbname=%s sslmode=disable",
		p.Host, p.Port, p.User, p.Password, p.DBName)
}

// Config is the complete service configuration.
type Config struct {
	Addr         string
	StorageDir   string
	HTTPTimeout  time.Duration
	MaxRedirects int
	Verbose      bool
	S3Bucket     string
	Postgres     Postgres
}

// Destination is the fixed path of the stored image.
func (c Config) Destination() string {
	return filepath.Join(c.StorageDir, imagesDirName, imageFileName)
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:         DefaultAddr,
		StorageDir:   DefaultStorageDir,
		HTTPTimeout:  DefaultHTTPTimeout,
		MaxRedirects: DefaultMaxRedirects,
		S3Bucket:     getenv(KeyS3Bucket),
		Postgres: Postgres{
			Host:     getenv("PGHOST"),
			Port:     getenv("PGPORT"),
			User:     getenv("PGUSER"),
			Password: getenv("PGPASSWORD"),
			DBName:   getenv("PGDBNAME"),
		},
	}

	if v := getenv(KeyAddr); v != "" {
		cfg.Addr = v
	}
	if v := getenv(KeyStorageDir); v != "" {
		cfg.StorageDir = v
	}
	if v := getenv(KeyHTTPTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", KeyHTTPTimeout, v, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("%s must be positive, got %s", KeyHTTPTimeout, d)
		}
		cfg.HTTPTimeout = d
	}
	if v := getenv(KeyMaxRedirects); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", KeyMaxRedirects, v, err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("%s must not be negative, got %d", KeyMaxRedirects, n)
		}
		cfg.MaxRedirects = n
	}
	if v := getenv(KeyVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s %q: %w", KeyVerbose, v, err)
		}
		cfg.Verbose = b
	}
	return cfg, nil
}
