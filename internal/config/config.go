package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	LogLevel   string
	AuthToken  string // shared bearer token for the mobile gateway; empty disables auth
	ShareTitle string // human-readable title shown in the share dialog

	// CurrencyGlyphs maps fiat codes to display glyphs. Seeded with the NGN
	// family and extendable via CURRENCY_GLYPHS ("USD=$,GHS=₵") so display
	// metadata stays configuration, not compiled-in assets.
	CurrencyGlyphs map[string]string
}

func New() *Config {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load(".env")

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOGLEVEL", "info"),
		AuthToken:      os.Getenv("AUTHTOKEN"),
		ShareTitle:     getEnv("SHARETITLE", "Transaction Receipt"),
		CurrencyGlyphs: defaultGlyphs(),
	}

	for code, glyph := range parseGlyphs(os.Getenv("CURRENCY_GLYPHS")) {
		cfg.CurrencyGlyphs[code] = glyph
	}
	return cfg
}

func defaultGlyphs() map[string]string {
	return map[string]string{
		"NGN":  "₦",
		"NGNZ": "₦",
	}
}

// parseGlyphs parses "USD=$,GHS=₵" into a map. Malformed entries are skipped.
func parseGlyphs(raw string) map[string]string {
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		code, glyph, ok := strings.Cut(pair, "=")
		code = strings.ToUpper(strings.TrimSpace(code))
		if !ok || code == "" || glyph == "" {
			continue
		}
		out[code] = glyph
	}
	return out
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
