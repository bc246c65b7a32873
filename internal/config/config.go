// Package config loads application configuration from environment
// variables.  Required values fail fast at startup; the notification
// credentials are deliberately optional so the booking capture path keeps
// working (in mock mode) when the messaging provider is not configured.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Config holds all runtime configuration.  Strings for identifiers and
// secrets, ints for TTLs.
type Config struct {
	Env  string // application environment (e.g. "dev", "prod")
	Port string // HTTP port to listen on

	DBUser string
	DBPass string // optional
	DBHost string
	DBPort string
	DBName string

	DBMaxConns int // connection pool size, DB_MAX_CONNS

	JWTSecret      string // secret used to sign admin access tokens
	AccessTTLMin   int    // access token time-to-live in minutes
	RefreshTTLDays int    // refresh token time-to-live in days

	AdminToken        string // shared admin secret, compared in constant time
	AdminPasswordHash string // optional bcrypt hash; takes precedence over AdminToken

	WhatsAppToken   string // Graph API bearer token (optional -> mock mode)
	WhatsAppPhoneID string // sending phone number id
	OperatorPhone   string // operator number that receives booking alerts

	SheetURL   string // optional spreadsheet webhook
	SheetToken string // shared token the webhook expects

	SiteURL string // public site URL used in confirmation messages
}

// Load reads configuration from the environment.  Missing required
// variables terminate the process with a fatal log message.
func Load() Config {
	cfg := Config{
		Env:            must("APP_ENV"),
		Port:           must("APP_PORT"),
		DBUser:         must("DB_USER"),
		DBPass:         os.Getenv("DB_PASS"),
		DBHost:         must("DB_HOST"),
		DBPort:         must("DB_PORT"),
		DBName:         must("DB_NAME"),
		DBMaxConns:     envInt("DB_MAX_CONNS", 25),
		JWTSecret:      must("JWT_SECRET"),
		AccessTTLMin:   mustInt("ACCESS_TOKEN_TTL_MIN"),
		RefreshTTLDays: mustInt("REFRESH_TOKEN_TTL_DAYS"),

		AdminToken:        os.Getenv("ADMIN_API_TOKEN"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		WhatsAppToken:   os.Getenv("WHATSAPP_TOKEN"),
		WhatsAppPhoneID: os.Getenv("WHATSAPP_PHONE_ID"),
		OperatorPhone:   os.Getenv("OPERATOR_PHONE"),

		SheetURL:   os.Getenv("GOOGLE_SHEET_SCRIPT_URL"),
		SheetToken: os.Getenv("GOOGLE_SHEET_API_TOKEN"),

		SiteURL: getenv("SITE_URL", "https://rach-tours.com"),
	}

	// Never run with a placeholder signing secret.
	if strings.Contains(cfg.JWTSecret, "change-me") {
		log.Fatal("JWT_SECRET is a placeholder; set a strong random secret")
	}
	if cfg.AdminToken == "" && cfg.AdminPasswordHash == "" {
		log.Fatal("set ADMIN_API_TOKEN or ADMIN_PASSWORD_HASH; admin login cannot work without one")
	}
	if cfg.WhatsAppToken == "" || cfg.WhatsAppPhoneID == "" || cfg.OperatorPhone == "" {
		log.Println("WARNING: WhatsApp credentials incomplete; outbound messages run in mock mode")
	}
	return cfg
}

// WhatsAppConfigured reports whether all messaging provider credentials
// are present.
func (c Config) WhatsAppConfigured() bool {
	return c.WhatsAppToken != "" && c.WhatsAppPhoneID != "" && c.OperatorPhone != ""
}

// SheetConfigured reports whether the spreadsheet mirror is enabled.
func (c Config) SheetConfigured() bool {
	return c.SheetURL != "" && c.SheetToken != ""
}

// must retrieves a required environment variable or exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the value into an integer.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}
