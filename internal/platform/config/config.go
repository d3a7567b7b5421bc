package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for the transfer engine. Values are
// loaded from environment variables, with an optional .env file for local
// development. Postgres, Redis, and Kafka are all optional: when unset the
// engine falls back to in-memory stores and the log notification sender.
type Config struct {
	Addr        string `mapstructure:"PROVENIA_ADDR"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	RedisURL          string        `mapstructure:"REDIS_URL"`
	RedisPoolSize     int           `mapstructure:"REDIS_POOL_SIZE"`
	RedisMinIdleConns int           `mapstructure:"REDIS_MIN_IDLE_CONNS"`
	RedisDialTimeout  time.Duration `mapstructure:"REDIS_DIAL_TIMEOUT"`
	RedisReadTimeout  time.Duration `mapstructure:"REDIS_READ_TIMEOUT"`
	RedisWriteTimeout time.Duration `mapstructure:"REDIS_WRITE_TIMEOUT"`

	KafkaBrokers      string `mapstructure:"KAFKA_BROKERS"`
	AuditTopic        string `mapstructure:"AUDIT_TOPIC"`
	NotificationTopic string `mapstructure:"NOTIFICATION_TOPIC"`

	CertificateSigningKey string        `mapstructure:"CERTIFICATE_SIGNING_KEY"`
	SettlementWindow      time.Duration `mapstructure:"SETTLEMENT_IDEMPOTENCY_WINDOW"`
	ShutdownTimeout       time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

// RedisConfig is the subset consumed by the platform redis client.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Redis extracts the redis client configuration.
func (c Config) Redis() RedisConfig {
	return RedisConfig{
		URL:          c.RedisURL,
		PoolSize:     c.RedisPoolSize,
		MinIdleConns: c.RedisMinIdleConns,
		DialTimeout:  c.RedisDialTimeout,
		ReadTimeout:  c.RedisReadTimeout,
		WriteTimeout: c.RedisWriteTimeout,
	}
}

// Load reads configuration from the environment, looking for an optional
// .env file under path. Defaults keep a dev instance runnable with no
// external services at all.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PROVENIA_ADDR", ":8080")
	viper.SetDefault("REDIS_POOL_SIZE", 10)
	viper.SetDefault("REDIS_MIN_IDLE_CONNS", 2)
	viper.SetDefault("REDIS_DIAL_TIMEOUT", 5*time.Second)
	viper.SetDefault("REDIS_READ_TIMEOUT", 3*time.Second)
	viper.SetDefault("REDIS_WRITE_TIMEOUT", 3*time.Second)
	viper.SetDefault("AUDIT_TOPIC", "provenia.audit.compliance")
	viper.SetDefault("NOTIFICATION_TOPIC", "provenia.notifications.webhook")
	// Dev default; must be overridden in production.
	viper.SetDefault("CERTIFICATE_SIGNING_KEY", "dev-certificate-key-change-in-production")
	viper.SetDefault("SETTLEMENT_IDEMPOTENCY_WINDOW", 2*time.Minute)
	viper.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	// A missing .env file is fine; the environment alone is enough.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
