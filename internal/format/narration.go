package format

import (
	"regexp"
	"strconv"
	"strings"
)

// SwapNarration is the structured result of a successful narration parse.
type SwapNarration struct {
	FromAmount   float64
	FromCurrency string
	ToAmount     float64
	ToCurrency   string
}

// Matches "Swapped 1.5 BTC to 45000 USDT" and close variants. Only used as
// a fallback when structured swap fields are absent.
var swapPattern = regexp.MustCompile(
	`(?i)\b(?:swap(?:ped)?|convert(?:ed)?|exchanged?)\s+([0-9]+(?:\.[0-9]+)?)\s+([A-Za-z]{2,10})\s+(?:to|for)\s+([0-9]+(?:\.[0-9]+)?)\s+([A-Za-z]{2,10})`)

// ParseSwapNarration extracts a swap record from free text. A miss is
// silent: the caller falls back to currency-only display.
func ParseSwapNarration(text string) *SwapNarration {
	m := swapPattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	from, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	to, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return nil
	}
	return &SwapNarration{
		FromAmount:   from,
		FromCurrency: strings.ToUpper(m[2]),
		ToAmount:     to,
		ToCurrency:   strings.ToUpper(m[4]),
	}
}
