package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5*time.Minute, cfg.Database.MaxConnLifetime)
	assert.Equal(t, StorageLocal, cfg.Storage.Driver)
	assert.Equal(t, "/static", cfg.Storage.PublicPrefix)
	assert.Equal(t, "cover_images", cfg.Storage.CoverDir)
	assert.True(t, cfg.Catalog.RejectUnchangedCategoryName)
	assert.Equal(t, int64(10*1024*1024), cfg.Catalog.MaxCoverSize)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("DB_SQLITE_PATH", "/tmp/x.db")
	t.Setenv("CATALOG_REJECT_UNCHANGED_CATEGORY_NAME", "false")
	t.Setenv("REDIS_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.Database.SQLitePath)
	assert.False(t, cfg.Catalog.RejectUnchangedCategoryName)
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CORSOrigins)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "unknown db driver", env: map[string]string{"DB_DRIVER": "mysql"}, wantErr: "DB_DRIVER"},
		{name: "unknown storage driver", env: map[string]string{"STORAGE_DRIVER": "s3"}, wantErr: "STORAGE_DRIVER"},
		{name: "production without db password", env: map[string]string{"APP_ENV": "production"}, wantErr: "DB_PASSWORD"},
		{name: "zero cover size", env: map[string]string{"CATALOG_MAX_COVER_SIZE": "0"}, wantErr: "CATALOG_MAX_COVER_SIZE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestPostgresConfig(t *testing.T) {
	t.Setenv("DB_PORT", "5439")
	t.Setenv("DB_MAX_CONNECTIONS", "10")

	cfg, err := Load()
	require.NoError(t, err)

	pg := cfg.PostgresConfig()
	assert.Equal(t, 5439, pg.Port)
	assert.Equal(t, int32(10), pg.MaxConns)
	assert.Equal(t, "library_catalog", pg.DBName)
}
