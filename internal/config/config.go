package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

// Config holds the main configuration for the monitor.
type Config struct {
	Server   Server         `mapstructure:"server"`
	Database Database       `mapstructure:"database"`
	Redis    Redis          `mapstructure:"redis"`
	Email    Email          `mapstructure:"email"`
	External External       `mapstructure:"external"`
	Webhook  Webhook        `mapstructure:"webhook"`
	Auth     Auth           `mapstructure:"auth"`
	Alerts   Alerts         `mapstructure:"alerts"`
	Retry    retry.Strategy `mapstructure:"retry"`
}

// Server holds HTTP server-related configuration.
type Server struct {
	HTTPPort string `mapstructure:"http_port"` // HTTP port to listen on
}

// Database holds database master and slave configuration.
type Database struct {
	Master DatabaseNode   `mapstructure:"master"`
	Slaves []DatabaseNode `mapstructure:"slaves"`

	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DatabaseNode holds connection parameters for a single database node.
type DatabaseNode struct {
	Host    string `mapstructure:"host"`
	Port    string `mapstructure:"port"`
	User    string `mapstructure:"user"`
	Pass    string `mapstructure:"pass"`
	Name    string `mapstructure:"name"`
	SSLMode string `mapstructure:"ssl_mode"`
}

// Redis holds Redis connection parameters for the status cache.
type Redis struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// Email holds SMTP configuration for alert emails.
type Email struct {
	Enabled  bool   `mapstructure:"enabled"` // EMAIL_ALERTS_ENABLED
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`

	// FallbackRecipient is the legacy single recipient, used when the
	// maintenance config row carries no recipients of its own.
	FallbackRecipient string `mapstructure:"fallback_recipient"`
}

// External holds the outbound webhook target.
type External struct {
	APIURL string `mapstructure:"api_url"` // EXTERNAL_API_URL, empty = not configured
	APIKey string `mapstructure:"api_key"` // EXTERNAL_API_KEY
}

// Webhook holds inbound webhook authentication.
type Webhook struct {
	Secret string `mapstructure:"secret"` // WEBHOOK_SECRET
}

// Auth holds verification settings for admin routes. Token issuance lives
// in the separate auth service.
type Auth struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

// Alerts holds the evaluation schedule.
type Alerts struct {
	Timezone   string   `mapstructure:"timezone"`     // e.g. America/Argentina/Buenos_Aires
	CronSpecs  []string `mapstructure:"cron_specs"`   // fire times, standard cron format
	RunOnStart bool     `mapstructure:"run_on_start"` // RUN_ALERTS_ON_START
}

// DSN returns the PostgreSQL DSN string for connecting to this database node.
func (n DatabaseNode) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		n.User, n.Pass, n.Host, n.Port, n.Name, n.SSLMode,
	)
}

// mustBindEnv binds the recognized environment variables to Viper keys.
//
// It panics if any environment variable cannot be bound.
func mustBindEnv() {
	bindings := map[string]string{
		"database.master.host": "DB_HOST",
		"database.master.port": "DB_PORT",
		"database.master.user": "DB_USER",
		"database.master.pass": "DB_PASSWORD",
		"database.master.name": "DB_NAME",

		"redis.address":  "REDIS_ADDRESS",
		"redis.password": "REDIS_PASSWORD",
		"redis.database": "REDIS_DATABASE",

		"email.enabled":            "EMAIL_ALERTS_ENABLED",
		"email.smtp_host":          "SMTP_HOST",
		"email.smtp_port":          "SMTP_PORT",
		"email.username":           "SMTP_USER",
		"email.password":           "SMTP_PASSWORD",
		"email.from":               "SMTP_FROM",
		"email.fallback_recipient": "NOTIFICATION_EMAIL",

		"external.api_url": "EXTERNAL_API_URL",
		"external.api_key": "EXTERNAL_API_KEY",

		"webhook.secret": "WEBHOOK_SECRET",

		"auth.jwt_secret": "JWT_SECRET",

		"alerts.run_on_start": "RUN_ALERTS_ON_START",
	}

	for key, env := range bindings {
		if err := viper.BindEnv(key, env); err != nil {
			zlog.Logger.Panic().Err(err).Msgf("failed to bind env %s", env)
		}
	}
}

// Must loads and validates the configuration from file and environment
// variables. It panics if configuration cannot be read or unmarshalled.
func Must() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		zlog.Logger.Panic().Err(err).Msg("failed to read config")
	}

	mustBindEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		zlog.Logger.Panic().Err(err).Msgf("failed to unmarshal config: %v", err)
	}

	if cfg.Webhook.Secret == "" {
		zlog.Logger.Warn().Msg("WEBHOOK_SECRET not set, inbound webhooks will be rejected")
	}

	return &cfg
}
