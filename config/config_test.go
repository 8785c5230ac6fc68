package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, DriverPostgres, cfg.StoreDriver)
	assert.Equal(t, 24*time.Hour, cfg.AuthExpiresIn)
	assert.Equal(t, 256, cfg.NotifyQueueSize)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Empty(t, cfg.KafkaBrokers)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("STORE_DRIVER", DriverSQLite)
	t.Setenv("AUTH_DISABLED", "true")
	t.Setenv("AUTH_EXPIRES_IN", "90m")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092")
	t.Setenv("BACKUP_HOUR", "4")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.True(t, cfg.AuthDisabled)
	assert.Equal(t, 90*time.Minute, cfg.AuthExpiresIn)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 4, cfg.BackupHour)
	assert.NoError(t, cfg.Validate())
}

func TestLoadEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("APP_PORT=9000\nMONGO_DATABASE=fromfile\n"), 0o600))
	t.Setenv("APP_PORT", "7000")
	// godotenv sets variables in the process; make sure they are removed afterwards.
	t.Setenv("MONGO_DATABASE", "")
	require.NoError(t, os.Unsetenv("MONGO_DATABASE"))

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "fromfile", cfg.MongoDatabase)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			StoreDriver:     DriverPostgres,
			DatabaseURL:     "postgres://localhost/armory",
			AuthSecretKey:   "secret",
			AuthExpiresIn:   time.Hour,
			NotifyQueueSize: 1,
			BackupHour:      2,
		}
	}
	require.NoError(t, valid().Validate())

	cases := map[string]func(*Config){
		"unknown driver":      func(c *Config) { c.StoreDriver = "oracle" },
		"missing dsn":         func(c *Config) { c.DatabaseURL = "" },
		"missing secret":      func(c *Config) { c.AuthSecretKey = "" },
		"zero queue":          func(c *Config) { c.NotifyQueueSize = 0 },
		"bad backup hour":     func(c *Config) { c.BackupHour = 24 },
		"slack without token": func(c *Config) { c.SlackChannel = "#ops" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			assert.Error(t, c.Validate())
		})
	}

	c := valid()
	c.AuthSecretKey = ""
	c.AuthDisabled = true
	assert.NoError(t, c.Validate())
}
