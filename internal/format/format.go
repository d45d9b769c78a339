// Package format holds the pure display formatters shared by every receipt
// renderer: amount formatting, value masking, network prettifying, explorer
// URL resolution and best-effort swap narration parsing.
package format

import (
	"math"
	"strconv"
	"strings"
)

// Placeholder rendered when an amount cannot be parsed.
const Placeholder = "--"

// Formatter applies currency-aware amount formatting. Fiat glyphs are
// injected as configuration so the engine carries no compiled-in UI assets.
type Formatter struct {
	glyphs map[string]string
}

func New(glyphs map[string]string) *Formatter {
	g := make(map[string]string, len(glyphs))
	for code, glyph := range glyphs {
		g[strings.ToUpper(strings.TrimSpace(code))] = glyph
	}
	return &Formatter{glyphs: g}
}

// IsFiat reports whether the currency code has a configured fiat glyph.
func (f *Formatter) IsFiat(ccy string) bool {
	_, ok := f.glyphs[strings.ToUpper(strings.TrimSpace(ccy))]
	return ok
}

// AmountWithSymbol renders an amount for display. Recognized fiat codes are
// rendered as a thousands-grouped integer behind their glyph; everything
// else keeps up to 8 fractional digits with the trimmed symbol suffixed.
// Unparsable input yields the placeholder dash.
func (f *Formatter) AmountWithSymbol(amount, currencyOrSymbol string) string {
	v, err := parseAmount(amount)
	if err != nil {
		return Placeholder
	}

	symbol := strings.TrimSpace(currencyOrSymbol)
	if glyph, ok := f.glyphs[strings.ToUpper(symbol)]; ok {
		return formatFiat(v, glyph)
	}

	num := strconv.FormatFloat(v, 'f', -1, 64)
	if frac := strings.IndexByte(num, '.'); frac >= 0 && len(num)-frac-1 > 8 {
		num = strings.TrimRight(strconv.FormatFloat(v, 'f', 8, 64), "0")
		num = strings.TrimRight(num, ".")
	}
	if symbol == "" {
		return num
	}
	return num + " " + symbol
}

func parseAmount(amount string) (float64, error) {
	s := strings.TrimSpace(amount)
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return strconv.ParseFloat(s, 64)
}

func formatFiat(v float64, glyph string) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + glyph + groupThousands(int64(math.Round(v)))
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// MaskMiddle truncates a long value to its lead and tail with an ellipsis
// between. Values short enough to show in full are returned unchanged.
func MaskMiddle(value string, lead, tail int) string {
	if len(value) <= lead+tail {
		return value
	}
	return value[:lead] + "…" + value[len(value)-tail:]
}
