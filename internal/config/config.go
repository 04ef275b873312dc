// Package config loads process settings from .env, the environment and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"time"

	"go-timesheet/internal/shared/connection"

	"github.com/joho/godotenv"
	"github.com/peterbourgon/ff/v4"
)

type Config struct {
	AppEnv      string
	Port        string
	JWTSecret   string
	AutoMigrate bool
	RBACModel   string

	Postgres    connection.PostgresConfig
	RedisAddr   string
	KafkaBroker string
	KafkaGroup  string

	MaxRetries   int
	PollInterval time.Duration
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (c Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Load reads .env when present, then parses args. Every flag can also be set
// through its upper-snake environment name, e.g. --db-host as DB_HOST.
func Load(name string, args []string) (Config, error) {
	_ = godotenv.Load()

	fs := ff.NewFlagSet(name)
	var (
		appEnv      = fs.StringLong("app-env", "development", "runtime environment: development or production")
		port        = fs.StringLong("port", "3000", "HTTP listen port")
		jwtSecret   = fs.StringLong("jwt-secret", "", "HMAC secret used to verify access tokens")
		autoMigrate = fs.BoolLong("auto-migrate", "run schema migrations on startup")
		rbacModel   = fs.StringLong("rbac-model", "", "casbin model file; built-in model when empty")
		dbHost      = fs.StringLong("db-host", "localhost", "postgres host")
		dbUser      = fs.StringLong("db-user", "postgres", "postgres user")
		dbPassword  = fs.StringLong("db-password", "", "postgres password")
		dbName      = fs.StringLong("db-name", "timesheet", "postgres database")
		dbPort      = fs.StringLong("db-port", "5432", "postgres port")
		dbSSLMode   = fs.StringLong("db-sslmode", "disable", "postgres sslmode")
		redisAddr   = fs.StringLong("redis-addr", "", "redis address; idempotency is off when empty")
		kafkaBroker = fs.StringLong("kafka-broker", "", "kafka bootstrap broker")
		kafkaGroup  = fs.StringLong("kafka-group", "go-timesheet-activity", "consumer group id")
		maxRetries  = fs.IntLong("connect-retries", 5, "connection attempts per dependency")
		pollSeconds = fs.IntLong("outbox-poll-seconds", 3, "outbox worker poll interval in seconds")
	)

	if err := ff.Parse(fs, args, ff.WithEnvVars()); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Config{
		AppEnv:      *appEnv,
		Port:        *port,
		JWTSecret:   *jwtSecret,
		AutoMigrate: *autoMigrate,
		RBACModel:   *rbacModel,
		Postgres: connection.PostgresConfig{
			Host:     *dbHost,
			User:     *dbUser,
			Password: *dbPassword,
			Name:     *dbName,
			Port:     *dbPort,
			SSLMode:  *dbSSLMode,
		},
		RedisAddr:    *redisAddr,
		KafkaBroker:  *kafkaBroker,
		KafkaGroup:   *kafkaGroup,
		MaxRetries:   *maxRetries,
		PollInterval: time.Duration(*pollSeconds) * time.Second,
	}
	return cfg, nil
}

// RequireAPI checks the settings the HTTP server cannot start without.
func (c Config) RequireAPI() error {
	if c.JWTSecret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}

// RequireKafka checks the settings the worker and consumer need.
func (c Config) RequireKafka() error {
	if c.KafkaBroker == "" {
		return errors.New("KAFKA_BROKER is required")
	}
	return nil
}
