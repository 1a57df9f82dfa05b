package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"progym-go/pkg/logger"
)

type Config struct {
	HTTPPort    string   `env:"HTTP_PORT" envDefault:"8080"`
	Env         string   `env:"ENV" envDefault:"development"`
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:5173" envSeparator:","`
	DB          DBConfig
	Auth        AuthConfig
	Catalog     CatalogConfig
}

type DBConfig struct {
	// DSN falls back to DATABASE_URL when DB_DSN is unset.
	DSN             string        `env:"DB_DSN"`
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"progym"`
	Password        string        `env:"DB_PASSWORD" envDefault:"progym"`
	Name            string        `env:"DB_NAME" envDefault:"progym"`
	SSLMode         string        `env:"DB_SSLMODE" envDefault:"disable"`
	TimeZone        string        `env:"DB_TIMEZONE" envDefault:"UTC"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	MigrateOnStart  bool          `env:"DB_MIGRATE_ON_START" envDefault:"true"`
}

type AuthConfig struct {
	UserHeader string `env:"AUTH_USER_HEADER" envDefault:"X-User-ID"`
	SkipAuth   bool   `env:"AUTH_SKIP" envDefault:"false"`
	MockUserID string `env:"AUTH_MOCK_USER_ID" envDefault:"00000000-0000-0000-0000-000000000001"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"5m"`
	SeedFile string        `env:"CATALOG_SEED_FILE" envDefault:"catalog.yaml"`
}

func Load(log logger.Logger) (Config, error) {
	if err := loadDotEnv(log); err != nil {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DB.DSN == "" {
		cfg.DB.DSN = os.Getenv("DATABASE_URL")
	}
	cfg.CORSOrigins = trimList(cfg.CORSOrigins)

	return cfg, nil
}

func trimList(items []string) []string {
	trimmed := items[:0]
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			trimmed = append(trimmed, item)
		}
	}
	return trimmed
}

// GetDSN returns the key=value connection string used by the gorm postgres driver.
func (c DBConfig) GetDSN() string {
	if c.DSN != "" {
		return c.DSN
	}
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.TimeZone
}

// URL returns a postgres:// URL. golang-migrate picks its driver from the scheme,
// so a key=value DSN cannot be passed to it.
func (c DBConfig) URL() string {
	if strings.HasPrefix(c.DSN, "postgres://") || strings.HasPrefix(c.DSN, "postgresql://") {
		return c.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   c.Host + ":" + c.Port,
		Path:   "/" + c.Name,
	}
	query := url.Values{}
	query.Set("sslmode", c.SSLMode)
	u.RawQuery = query.Encode()
	return u.String()
}
