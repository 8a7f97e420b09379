package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the whole application configuration. Values come from
// environment variables (optionally seeded from .env) and an optional
// config file named by CONFIG_FILE.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Storage  StorageConfig
	Catalog  CatalogConfig
	Worker   WorkerConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
	CORSOrigins []string
}

type DatabaseConfig struct {
	Driver            string // postgres, sqlite
	Host              string
	Port              int
	User              string
	Password          string
	Name              string
	SSLMode           string
	MaxConns          int
	MinConns          int
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	ConnectTimeout    time.Duration
	SQLitePath        string
	AutoMigrate       bool
}

type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	CacheTTL time.Duration
}

type StorageConfig struct {
	Driver       string // local, minio
	LocalRoot    string // directory served under PublicPrefix
	PublicPrefix string
	CoverDir     string
	MinIO        MinIOConfig
}

type MinIOConfig struct {
	Endpoint  string // localhost:9000
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // base URL for stored objects; derived from endpoint when empty
}

type CatalogConfig struct {
	// RejectUnchangedCategoryName makes a category update that repeats the
	// current name fail with NoOpName.
	RejectUnchangedCategoryName bool
	MaxCoverSize                int64
}

type WorkerConfig struct {
	Concurrency int
	HealthAddr  string // liveness endpoint of cmd/worker
}

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageLocal = "local"
	StorageMinIO = "minio"
)

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("APP_NAME", "Library Catalog API")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("APP_VERSION", "1.0.0")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Database
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "library")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "library_catalog")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNECTIONS", 25)
	v.SetDefault("DB_MIN_CONNECTIONS", 5)
	v.SetDefault("DB_MAX_CONN_LIFETIME", "5m")
	v.SetDefault("DB_MAX_CONN_IDLE_TIME", "1m")
	v.SetDefault("DB_HEALTH_CHECK_PERIOD", "1m")
	v.SetDefault("DB_MAX_RETRIES", 5)
	v.SetDefault("DB_RETRY_DELAY", "1s")
	v.SetDefault("DB_CONNECT_TIMEOUT", "10s")
	v.SetDefault("DB_SQLITE_PATH", "data/catalog.db")
	v.SetDefault("DB_AUTO_MIGRATE", true)

	// Redis
	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_CACHE_TTL", "10m")

	// Storage
	v.SetDefault("STORAGE_DRIVER", StorageLocal)
	v.SetDefault("STORAGE_LOCAL_ROOT", "static")
	v.SetDefault("STORAGE_PUBLIC_PREFIX", "/static")
	v.SetDefault("STORAGE_COVER_DIR", "cover_images")
	v.SetDefault("MINIO_ENDPOINT", "localhost:9000")
	v.SetDefault("MINIO_ACCESS_KEY", "minioadmin")
	v.SetDefault("MINIO_SECRET_KEY", "minioadmin")
	v.SetDefault("MINIO_BUCKET", "library")
	v.SetDefault("MINIO_USE_SSL", false)
	v.SetDefault("MINIO_PUBLIC_URL", "")

	// Catalog
	v.SetDefault("CATALOG_REJECT_UNCHANGED_CATEGORY_NAME", true)
	v.SetDefault("CATALOG_MAX_COVER_SIZE", 10*1024*1024)

	// Worker
	v.SetDefault("WORKER_CONCURRENCY", 5)
	v.SetDefault("WORKER_HEALTH_ADDR", ":9999")
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("APP_NAME"),
			Environment: v.GetString("APP_ENV"),
			Port:        v.GetString("APP_PORT"),
			Version:     v.GetString("APP_VERSION"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			CORSOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		Database: DatabaseConfig{
			Driver:            strings.ToLower(v.GetString("DB_DRIVER")),
			Host:              v.GetString("DB_HOST"),
			Port:              v.GetInt("DB_PORT"),
			User:              v.GetString("DB_USER"),
			Password:          v.GetString("DB_PASSWORD"),
			Name:              v.GetString("DB_NAME"),
			SSLMode:           v.GetString("DB_SSLMODE"),
			MaxConns:          v.GetInt("DB_MAX_CONNECTIONS"),
			MinConns:          v.GetInt("DB_MIN_CONNECTIONS"),
			MaxConnLifetime:   v.GetDuration("DB_MAX_CONN_LIFETIME"),
			MaxConnIdleTime:   v.GetDuration("DB_MAX_CONN_IDLE_TIME"),
			HealthCheckPeriod: v.GetDuration("DB_HEALTH_CHECK_PERIOD"),
			MaxRetries:        v.GetInt("DB_MAX_RETRIES"),
			RetryDelay:        v.GetDuration("DB_RETRY_DELAY"),
			ConnectTimeout:    v.GetDuration("DB_CONNECT_TIMEOUT"),
			SQLitePath:        v.GetString("DB_SQLITE_PATH"),
			AutoMigrate:       v.GetBool("DB_AUTO_MIGRATE"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			CacheTTL: v.GetDuration("REDIS_CACHE_TTL"),
		},
		Storage: StorageConfig{
			Driver:       strings.ToLower(v.GetString("STORAGE_DRIVER")),
			LocalRoot:    v.GetString("STORAGE_LOCAL_ROOT"),
			PublicPrefix: strings.TrimRight(v.GetString("STORAGE_PUBLIC_PREFIX"), "/"),
			CoverDir:     strings.Trim(v.GetString("STORAGE_COVER_DIR"), "/"),
			MinIO: MinIOConfig{
				Endpoint:  v.GetString("MINIO_ENDPOINT"),
				AccessKey: v.GetString("MINIO_ACCESS_KEY"),
				SecretKey: v.GetString("MINIO_SECRET_KEY"),
				Bucket:    v.GetString("MINIO_BUCKET"),
				UseSSL:    v.GetBool("MINIO_USE_SSL"),
				PublicURL: v.GetString("MINIO_PUBLIC_URL"),
			},
		},
		Catalog: CatalogConfig{
			RejectUnchangedCategoryName: v.GetBool("CATALOG_REJECT_UNCHANGED_CATEGORY_NAME"),
			MaxCoverSize:                v.GetInt64("CATALOG_MAX_COVER_SIZE"),
		},
		Worker: WorkerConfig{
			Concurrency: v.GetInt("WORKER_CONCURRENCY"),
			HealthAddr:  v.GetString("WORKER_HEALTH_ADDR"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate rejects unknown drivers and missing production secrets.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}

	switch c.Storage.Driver {
	case StorageLocal, StorageMinIO:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage.Driver)
	}

	if c.Catalog.MaxCoverSize <= 0 {
		return fmt.Errorf("CATALOG_MAX_COVER_SIZE must be positive")
	}

	if c.App.Environment == "production" {
		if c.Database.Driver == DriverPostgres && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Storage.Driver == StorageMinIO && c.Storage.MinIO.SecretKey == "minioadmin" {
			return fmt.Errorf("MINIO_SECRET_KEY must be changed in production")
		}
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
