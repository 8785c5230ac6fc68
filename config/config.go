// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
	DriverMongo    = "mongo"
)

type Config struct {
	Port         string `mapstructure:"APP_PORT"`
	Production   bool   `mapstructure:"APP_PRODUCTION"`
	Populate     bool   `mapstructure:"APP_POPULATE"`
	ImageDir     string `mapstructure:"APP_SERVER_URL"`
	SeedPassword string `mapstructure:"APP_SEED_PASSWORD"`

	AuthSecretKey string        `mapstructure:"AUTH_SECRET_KEY"`
	AuthExpiresIn time.Duration `mapstructure:"AUTH_EXPIRES_IN"`
	AuthDisabled  bool          `mapstructure:"AUTH_DISABLED"`

	StoreDriver   string `mapstructure:"STORE_DRIVER"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`
	MongoURI      string `mapstructure:"MONGO_URI"`
	MongoDatabase string `mapstructure:"MONGO_DATABASE"`

	SlackToken   string `mapstructure:"SLACK_TOKEN"`
	SlackChannel string `mapstructure:"SLACK_APP_CHANNEL"`

	KafkaBrokers []string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic   string   `mapstructure:"KAFKA_TOPIC"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisChannel  string `mapstructure:"REDIS_CHANNEL"`

	NotifyQueueSize int `mapstructure:"NOTIFY_QUEUE_SIZE"`

	BackupDir       string        `mapstructure:"BACKUP_DIR"`
	BackupHour      int           `mapstructure:"BACKUP_HOUR"`
	BackupRetention time.Duration `mapstructure:"BACKUP_RETENTION"`

	LogLevel    string   `mapstructure:"LOG_LEVEL"`
	CORSOrigins []string `mapstructure:"CORS_ORIGINS"`
}

var defaults = map[string]any{
	"APP_PORT":          "8080",
	"APP_PRODUCTION":    false,
	"APP_POPULATE":      false,
	"APP_SERVER_URL":    "./uploads",
	"APP_SEED_PASSWORD": "",
	"AUTH_SECRET_KEY":   "",
	"AUTH_EXPIRES_IN":   "24h",
	"AUTH_DISABLED":     false,
	"STORE_DRIVER":      DriverPostgres,
	"DATABASE_URL":      "",
	"MONGO_URI":         "mongodb://localhost:27017",
	"MONGO_DATABASE":    "armory",
	"SLACK_TOKEN":       "",
	"SLACK_APP_CHANNEL": "",
	"KAFKA_BROKERS":     "",
	"KAFKA_TOPIC":       "armory.changes",
	"REDIS_ADDR":        "",
	"REDIS_PASSWORD":    "",
	"REDIS_CHANNEL":     "armory:changes",
	"NOTIFY_QUEUE_SIZE": 256,
	"BACKUP_DIR":        "",
	"BACKUP_HOUR":       2,
	"BACKUP_RETENTION":  "96h",
	"LOG_LEVEL":         "info",
	"CORS_ORIGINS":      "*",
}

// Load reads envFile when it exists, then the process environment. Real
// environment variables win over the file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.KafkaBrokers = splitList(cfg.KafkaBrokers)
	cfg.CORSOrigins = splitList(cfg.CORSOrigins)
	return cfg, nil
}

// splitList accepts both repeated values and one comma separated value.
func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func (c *Config) Validate() error {
	var errs []error
	switch c.StoreDriver {
	case DriverPostgres, DriverMySQL:
		if c.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for %s", c.StoreDriver))
		}
	case DriverSQLite:
	case DriverMongo:
		if c.MongoURI == "" || c.MongoDatabase == "" {
			errs = append(errs, errors.New("MONGO_URI and MONGO_DATABASE are required for mongo"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver))
	}
	if !c.AuthDisabled && c.AuthSecretKey == "" {
		errs = append(errs, errors.New("AUTH_SECRET_KEY is required unless AUTH_DISABLED is set"))
	}
	if c.AuthExpiresIn <= 0 {
		errs = append(errs, errors.New("AUTH_EXPIRES_IN must be positive"))
	}
	if c.NotifyQueueSize < 1 {
		errs = append(errs, errors.New("NOTIFY_QUEUE_SIZE must be at least 1"))
	}
	if c.BackupHour < 0 || c.BackupHour > 23 {
		errs = append(errs, errors.New("BACKUP_HOUR must be between 0 and 23"))
	}
	if (c.SlackToken == "") != (c.SlackChannel == "") {
		errs = append(errs, errors.New("SLACK_TOKEN and SLACK_APP_CHANNEL must be set together"))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
