package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,       default=8080"`
	Env      string `env:"ENV,        default=development"`
	LogLevel string `env:"LOG_LEVEL,  default=info"`

	Upstream UpstreamConfig
	Session  SessionConfig
	Store    StoreConfig
	Site     SiteConfig
}

// UpstreamConfig points the portal at the catalog backend API.
type UpstreamConfig struct {
	BaseURL string `env:"UPSTREAM_BASE_URL, default=https://hafaksurgicals-backend.onrender.com/api"`
}

// SessionConfig controls the process-wide backend session.
type SessionConfig struct {
	// ValidateTimeout bounds a single token validation call. Calls still in
	// flight when it elapses are treated as failed.
	ValidateTimeout time.Duration `env:"SESSION_VALIDATE_TIMEOUT, default=10s"`
	// RevalidateEvery is the background revalidation interval while a token
	// is present.
	RevalidateEvery time.Duration `env:"SESSION_REVALIDATE_EVERY, default=5m"`
	// CookieSecret signs the portal-local browser cookie minted on login.
	CookieSecret string `env:"SESSION_COOKIE_SECRET"`
	// CookieTTL is the lifetime of that browser cookie.
	CookieTTL time.Duration `env:"SESSION_COOKIE_TTL, default=12h"`
}

// StoreConfig selects where the backend bearer token is persisted.
// When RedisAddr is set the token lives in Redis, otherwise in TokenFile.
type StoreConfig struct {
	TokenFile string `env:"TOKEN_FILE, default=.portal-token"`
	RedisAddr string `env:"REDIS_ADDR"`
	RedisDB   int    `env:"REDIS_DB,   default=0"`
}

// SiteConfig carries the static marketing content.
type SiteConfig struct {
	CompanyName    string `env:"COMPANY_NAME,    default=Hafak Surgicals"`
	CompanyWebsite string `env:"COMPANY_WEBSITE, default=https://hafaksurgicals.com"`
	CompanyTagline string `env:"COMPANY_TAGLINE, default=Quality medical equipment delivered"`
	CompanyAbout   string `env:"COMPANY_ABOUT,   default=Distributor of surgical and hospital equipment"`
	WhatsAppNumber string `env:"WHATSAPP_NUMBER, default=+2348033760003"`
	OfficeAddress  string `env:"OFFICE_ADDRESS"`
	OfficePhone    string `env:"OFFICE_PHONE"`
	OfficeEmail    string `env:"OFFICE_EMAIL"`
	OpeningHours   string `env:"OPENING_HOURS,   default=8:00 AM"`
	ClosingHours   string `env:"CLOSING_HOURS,   default=6:00 PM"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
