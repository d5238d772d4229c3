// Package config provides configuration loading and management for the snipbin application.
package config

import (
	"context"
	"os"
	"strings"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"

	"github.com/snipbin/snipbin/pkg/logger"
)

// Config holds environment configuration for the snipbin application.
type Config struct {
	// Port is the port on which the API server listens.
	Port string `env:"SNIPBIN_PORT"`

	// PostgresURL is a full DSN; when set it takes precedence over the
	// individual Postgres* fields below.
	PostgresURL      string `env:"POSTGRES_URL"`
	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDB       string `env:"POSTGRES_DB"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE"`

	// RedisAddr is the host:port of the Redis used for the snippet cache.
	RedisAddr string `env:"REDIS_ADDR"`
	// CacheTTLSeconds is the TTL for cached snippets and list pages.
	CacheTTLSeconds int `env:"CACHE_TTL_SECONDS" envDefault:"60"`

	// JWTSecret signs access tokens. Must be set for the server to issue or
	// accept tokens.
	JWTSecret string `env:"JWT_SECRET"`
	// JWTIssuer is the iss claim stamped on issued tokens.
	JWTIssuer string `env:"JWT_ISSUER" envDefault:"snipbin"`
	// AccessTokenTTLMinutes bounds the lifetime of issued tokens.
	AccessTokenTTLMinutes int `env:"ACCESS_TOKEN_TTL_MINUTES" envDefault:"60"`
}

// Conf holds the global configuration for the snipbin application.
var Conf Config

func loadDotEnv() {
	// Load .env file at the root of the project into environment if present.
	// Does not override existing environ variables.
	path := os.Getenv("DOTENV_PATHS")
	if path != "" {
		err := godotenv.Load(strings.Split(path, ",")...)
		if err != nil {
			logger.Fatal(context.Background(), err.Error())
		}
	}
}

// InitConf initializes the global configuration by loading environment variables and .env files.
func InitConf() {
	loadDotEnv()

	if err := env.Parse(&Conf); err != nil {
		logger.Fatal(context.Background(), err.Error())
	}
}
