package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type Environment string

const (
	Live Environment = "live"
	Beta             = "beta"
	Dev              = "dev"
)

type NogaConfig struct {
	Env      Environment
	Addr     string
	BaseUrl  string
	LogLevel zerolog.Level

	Postgres PostgresConfig
	Auth     AuthConfig
	Storage  StorageConfig
	Leads    LeadsConfig
}

type PostgresConfig struct {
	User     string
	Password string
	Hostname string
	Port     int
	DbName   string
	LogLevel tracelog.LogLevel
	MinConn  int32
	MaxConn  int32
}

func (info PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s host=%s port=%d dbname=%s", info.User, info.Password, info.Hostname, info.Port, info.DbName)
}

type AuthConfig struct {
	CookieDomain string
	CookieSecure bool

	// The one email address allowed to manage other admin accounts.
	SuperadminEmail string
}

type StorageConfig struct {
	Endpoint  string
	Region    string
	AccessKey string
	Secret    string
	Bucket    string

	// Base URL for public object access. Defaults to <Endpoint>/<Bucket>.
	PublicUrlBase string
}

func (s StorageConfig) Configured() bool {
	return s.Endpoint != "" && s.AccessKey != "" && s.Secret != ""
}

type LeadsConfig struct {
	// External automation endpoint that receives submitted leads as JSON.
	WebhookUrl string
}

var Config = load()

func load() NogaConfig {
	// A .env file is optional; real deployments set the environment directly.
	godotenv.Load()

	return NogaConfig{
		Env:      Environment(envOr("NOGA_ENV", string(Dev))),
		Addr:     envOr("NOGA_ADDR", "localhost:9001"),
		BaseUrl:  envOr("NOGA_BASE_URL", "http://noga.test:9001"),
		LogLevel: zerolog.Level(envInt("NOGA_LOG_LEVEL", int(zerolog.InfoLevel))),
		Postgres: PostgresConfig{
			User:     envOr("NOGA_DB_USER", "noga"),
			Password: os.Getenv("NOGA_DB_PASSWORD"),
			Hostname: envOr("NOGA_DB_HOST", "localhost"),
			Port:     envInt("NOGA_DB_PORT", 5432),
			DbName:   envOr("NOGA_DB_NAME", "noga"),
			LogLevel: tracelog.LogLevelWarn,
			MinConn:  int32(envInt("NOGA_DB_MIN_CONN", 2)),
			MaxConn:  int32(envInt("NOGA_DB_MAX_CONN", 10)),
		},
		Auth: AuthConfig{
			CookieDomain:    os.Getenv("NOGA_COOKIE_DOMAIN"),
			CookieSecure:    envBool("NOGA_COOKIE_SECURE", false),
			SuperadminEmail: envOr("NOGA_SUPERADMIN_EMAIL", "admin@noga.studio"),
		},
		Storage: StorageConfig{
			Endpoint:      os.Getenv("NOGA_SPACES_ENDPOINT"),
			Region:        envOr("NOGA_SPACES_REGION", "ams3"),
			AccessKey:     os.Getenv("NOGA_SPACES_KEY"),
			Secret:        os.Getenv("NOGA_SPACES_SECRET"),
			Bucket:        envOr("NOGA_SPACES_BUCKET", "blog-uploads"),
			PublicUrlBase: os.Getenv("NOGA_SPACES_PUBLIC_URL"),
		},
		Leads: LeadsConfig{
			WebhookUrl: os.Getenv("NOGA_LEADS_WEBHOOK_URL"),
		},
	}
}

func envOr(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBool(name string, def bool) bool {
	if v := os.Getenv(name); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
