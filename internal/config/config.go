package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

const (
	StorageLocal = "local"
	StorageR2    = "r2"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type R2Config struct {
	AccountID       string `env:"ACCOUNT_ID"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	BucketName      string `env:"BUCKET_NAME"`
	Region          string `env:"REGION" envDefault:"auto"`
}

type GoogleConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	RedirectURL  string `env:"REDIRECT_URL" envDefault:"http://localhost:8080/auth/google/callback"`
}

// Enabled reports whether Google sign-in has credentials.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	Environment string `env:"ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	DBDriver string `env:"DB_DRIVER" envDefault:"sqlite"`
	DB_URL   string `env:"DB_URL" envDefault:"users.db"`

	SessionSecret string        `env:"SESSION_SECRET" envDefault:"change-me-session-secret"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"local"`
	UploadDir      string `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadBytes int64  `env:"MAX_UPLOAD_BYTES" envDefault:"16777216"`

	ModelPath        string `env:"MODEL_PATH" envDefault:"dropout_lgbm_model.txt"`
	ModelSchemaPath  string `env:"MODEL_SCHEMA_PATH"`
	DropoutThreshold int    `env:"DROPOUT_THRESHOLD" envDefault:"70"`
	DropoutFallback  int    `env:"DROPOUT_FALLBACK" envDefault:"50"`

	OTelEndpoint string `env:"OTEL_ENDPOINT"`

	// Empty disables CORS; pages and API are served from the same origin.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	R2     R2Config     `envPrefix:"R2_"`
	Google GoogleConfig `envPrefix:"GOOGLE_"`
}

// Load reads the optional env file and parses the process environment.
func Load() (Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		slog.Info("no env file found", "path", envFile)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	switch c.StorageBackend {
	case StorageLocal:
	case StorageR2:
		if c.R2.AccountID == "" || c.R2.BucketName == "" {
			return fmt.Errorf("STORAGE_BACKEND=r2 requires R2_ACCOUNT_ID and R2_BUCKET_NAME")
		}
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.DropoutThreshold < 0 || c.DropoutThreshold > 100 {
		return fmt.Errorf("DROPOUT_THRESHOLD must be within 0..100, got %d", c.DropoutThreshold)
	}
	if c.DropoutFallback < 0 || c.DropoutFallback > 100 {
		return fmt.Errorf("DROPOUT_FALLBACK must be within 0..100, got %d", c.DropoutFallback)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	return nil
}

func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) CorsOptions() cors.Options {
	return cors.Options{
		AllowedOrigins:   c.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}
