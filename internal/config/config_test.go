package config

import "testing"

func TestParseGlyphs(t *testing.T) {
	got := parseGlyphs("USD=$, ghs =₵,broken,=£,EUR=")
	if len(got) != 2 {
		t.Fatalf("parseGlyphs kept %d entries, want 2: %v", len(got), got)
	}
	if got["USD"] != "$" || got["GHS"] != "₵" {
		t.Fatalf("unexpected glyph map: %v", got)
	}
}

func TestParseGlyphsEmpty(t *testing.T) {
	if got := parseGlyphs(""); len(got) != 0 {
		t.Fatalf("empty input should yield no entries, got %v", got)
	}
}

func TestNewSeedsNGNFamily(t *testing.T) {
	t.Setenv("CURRENCY_GLYPHS", "USD=$")

	cfg := New()
	if cfg.CurrencyGlyphs["NGN"] != "₦" || cfg.CurrencyGlyphs["NGNZ"] != "₦" {
		t.Fatalf("NGN defaults missing: %v", cfg.CurrencyGlyphs)
	}
	if cfg.CurrencyGlyphs["USD"] != "$" {
		t.Fatalf("env extension not applied: %v", cfg.CurrencyGlyphs)
	}
	if cfg.Port == "" || cfg.ShareTitle == "" {
		t.Fatalf("defaults missing: %+v", cfg)
	}
}
