package api

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/inekruz/dserver/internal/database"
)

type APIConfig struct {
	db      database.Store
	dbURL   string
	secret  string
	addr    string
	tlsCert string
	tlsKey  string
	logger  *slog.Logger
}

// LoadEnvConfig reads configuration from the environment, optionally seeded
// from a .env file. Every PG_* variable and JWT_SECRET must be present;
// listen address and TLS material have production defaults.
func LoadEnvConfig(envPath string) (*APIConfig, error) {
	if len(envPath) != 0 {
		_ = godotenv.Load(envPath)
	}

	cfg := &APIConfig{}

	for _, name := range []string{"PG_USER", "PG_HOST", "PG_DATABASE", "PG_PASSWORD", "PG_PORT", "JWT_SECRET"} {
		if len(os.Getenv(name)) == 0 {
			return nil, fmt.Errorf("required environment variable %s is not set", name)
		}
	}

	cfg.secret = os.Getenv("JWT_SECRET")
	cfg.GenerateDBConnectionString()

	cfg.addr = envOrDefault("ADDR", "api.dvoich.ru:443")
	cfg.tlsCert = envOrDefault("TLS_CERT", "/etc/letsencrypt/live/api.dvoich.ru/fullchain.pem")
	cfg.tlsKey = envOrDefault("TLS_KEY", "/etc/letsencrypt/live/api.dvoich.ru/privkey.pem")

	{
		slogLevel := os.Getenv("SLOG_LEVEL")
		switch slogLevel {
		case "DEBUG":
			cfg.NewLogger(slog.LevelDebug)
		case "WARN":
			cfg.NewLogger(slog.LevelWarn)
		case "ERROR":
			cfg.NewLogger(slog.LevelError)
		default:
			cfg.NewLogger(slog.LevelInfo)
		}
	}

	return cfg, nil
}

func (cfg *APIConfig) NewLogger(level slog.Level) {
	cfg.logger = slog.New(slog.NewJSONHandler(os.Stdout,
		&slog.HandlerOptions{Level: level}))
	slog.SetDefault(cfg.logger)
}

func (cfg *APIConfig) GenerateDBConnectionString() *string {
	cfg.dbURL = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("PG_USER"),
		os.Getenv("PG_PASSWORD"),
		os.Getenv("PG_HOST"),
		os.Getenv("PG_PORT"),
		os.Getenv("PG_DATABASE"),
	)
	return &cfg.dbURL
}

// UseStore attaches the opened store; main calls this once after the pool
// comes up.
func (cfg *APIConfig) UseStore(db database.Store) {
	cfg.db = db
}

func (cfg *APIConfig) Addr() string    { return cfg.addr }
func (cfg *APIConfig) DBURL() string   { return cfg.dbURL }
func (cfg *APIConfig) TLSCert() string { return cfg.tlsCert }
func (cfg *APIConfig) TLSKey() string  { return cfg.tlsKey }

func envOrDefault(envVar string, defaultVal string) string {
	envVal := os.Getenv(envVar)
	if len(envVal) == 0 {
		envVal = defaultVal
	}
	return envVal
}
