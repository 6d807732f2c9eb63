package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"PORT", "GIN_MODE", "APP_ENV", "APP_VERSION", "LOG_LEVEL", "LOG_FORMAT",
	"METRICS_ENABLED", "SENTRY_DSN",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_DSN",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "DASHBOARD_CACHE_TTL",
	"KAFKA_BROKER", "KAFKA_TOPIC",
}

// clearEnv unsets every key FromEnv reads; t.Setenv restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)

	cfg := FromEnv()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "root", cfg.Database.User)
	assert.Equal(t, "crm", cfg.Database.Name)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)

	assert.True(t, cfg.RateLimit.Enabled())
	assert.Equal(t, float64(20), cfg.RateLimit.RPS)
	assert.Equal(t, 40, cfg.RateLimit.Burst)

	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, "crm-events", cfg.Kafka.Topic)
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPS", "0")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("DASHBOARD_CACHE_TTL", "2m")
	t.Setenv("KAFKA_BROKER", "localhost:9092")

	cfg := FromEnv()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.False(t, cfg.MetricsEnabled)
	assert.False(t, cfg.RateLimit.Enabled())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 2*time.Minute, cfg.Redis.CacheTTL)
	assert.True(t, cfg.Kafka.Enabled())
}

func TestInvalidNumbersFallBackToDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_PORT", "not-a-port")
	t.Setenv("RATE_LIMIT_RPS", "fast")
	t.Setenv("METRICS_ENABLED", "maybe")

	cfg := FromEnv()

	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, float64(20), cfg.RateLimit.RPS)
	assert.True(t, cfg.MetricsEnabled)
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Duration
	}{
		{"", 30 * time.Second},
		{"45s", 45 * time.Second},
		{"90", 90 * time.Second},
		{"0", 0},
		{"soon", 30 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Setenv("DASHBOARD_CACHE_TTL", tt.raw)
			assert.Equal(t, tt.want, getEnvDuration("DASHBOARD_CACHE_TTL", 30*time.Second))
		})
	}
}

func TestRedisDisabledWithZeroTTL(t *testing.T) {
	r := RedisConfig{Addr: "localhost:6379"}
	assert.False(t, r.Enabled())
}

func TestDSNByDriver(t *testing.T) {
	base := DatabaseConfig{Host: "db", Port: 3306, User: "crm", Password: "secret", Name: "crm"}

	mysqlCfg := base
	mysqlCfg.Driver = DriverMySQL
	assert.Equal(t, "crm:secret@tcp(db:3306)/crm?charset=utf8mb4&parseTime=True&loc=Local", mysqlCfg.dsn())

	pgCfg := base
	pgCfg.Driver = DriverPostgres
	pgCfg.Port = 5432
	assert.Equal(t, "host=db port=5432 user=crm password=secret dbname=crm sslmode=disable TimeZone=UTC", pgCfg.dsn())

	sqliteCfg := base
	sqliteCfg.Driver = DriverSQLite
	assert.Equal(t, "crm.db", sqliteCfg.dsn())

	explicit := base
	explicit.DSN = "file::memory:"
	assert.Equal(t, "file::memory:", explicit.dsn())
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{"", DriverMySQL, DriverPostgres, DriverSQLite} {
		d, err := DatabaseConfig{Driver: driver, Name: "crm"}.Dialector()
		require.NoError(t, err, driver)
		assert.NotNil(t, d, driver)
	}

	_, err := DatabaseConfig{Driver: "oracle"}.Dialector()
	assert.EqualError(t, err, `unsupported DB_DRIVER "oracle"`)
}

func TestInitDBWithSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.db")

	db, err := InitDB(DatabaseConfig{Driver: DriverSQLite, DSN: path, MaxOpenConns: 1})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	assert.NoError(t, sqlDB.Ping())
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
