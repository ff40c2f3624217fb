package config

import (
	"errors"
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingJWTSecret    = errors.New("required environment variable not set: JWT_SECRET")
	ErrInvalidTrustedProxy = errors.New("invalid TRUSTED_PROXIES entry")
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	LogLevel    string

	JWTSecret  string
	SessionTTL time.Duration

	CORSOrigins []string

	// TrustedProxies are the peers whose X-Forwarded-For and X-Real-IP
	// headers are believed. Empty means the socket peer is always the client.
	TrustedProxies     []netip.Prefix
	RateLimitPerMinute int

	SMTP               SMTPConfig
	ContactNotifyEmail string
}

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Load reads the environment (and an optional .env file). A missing
// JWT_SECRET is an error: the server must not sign sessions with a default.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok || secret == "" {
		return nil, ErrMissingJWTSecret
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil || sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}

	rateLimit, err := strconv.Atoi(getEnv("RATE_LIMIT_PER_MINUTE", "10"))
	if err != nil || rateLimit <= 0 {
		rateLimit = 10
	}

	trustedProxies, err := parseTrustedProxies(getEnv("TRUSTED_PROXIES", ""))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		JWTSecret:  secret,
		SessionTTL: sessionTTL,

		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),

		TrustedProxies:     trustedProxies,
		RateLimitPerMinute: rateLimit,

		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			Username: getEnv("SMTP_USERNAME", ""),
			Password: getEnv("SMTP_PASSWORD", ""),
			From:     getEnv("SMTP_FROM", ""),
		},
		ContactNotifyEmail: getEnv("CONTACT_NOTIFY_EMAIL", ""),
	}, nil
}

// DatabaseURL reads only DATABASE_URL, for tools that never sign sessions.
func DatabaseURL() string {
	_ = godotenv.Load()
	return getEnv("DATABASE_URL", "")
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseTrustedProxies accepts a comma list of addresses and CIDR ranges.
func parseTrustedProxies(value string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, entry := range splitList(value) {
		if strings.Contains(entry, "/") {
			prefix, err := netip.ParsePrefix(entry)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrInvalidTrustedProxy, entry)
			}
			prefixes = append(prefixes, prefix.Masked())
			continue
		}
		addr, err := netip.ParseAddr(entry)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTrustedProxy, entry)
		}
		addr = addr.Unmap()
		prefixes = append(prefixes, netip.PrefixFrom(addr, addr.BitLen()))
	}
	return prefixes, nil
}
