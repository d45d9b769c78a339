// Package classify decides which receipt family a transaction belongs to.
// Classification happens exactly once, before the merge, and is never
// revisited downstream.
package classify

import (
	"strings"

	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/internal/resolve"
)

// Explicit flags any backend may set on the detail payload to mark a fiat
// withdrawal.
var withdrawalFlags = []string{"isWithdrawalFlag", "isNGNZWithdrawal", "isWithdrawal"}

// Fiat-like currency codes used by the withdrawal rule.
var fiatCodes = map[string]bool{
	"NGN":  true,
	"NGNZ": true,
}

var tokenKeys = []string{"transactionId", "currency", "hash", "address"}
var utilityKeys = []string{"orderId", "productName", "billType", "customerInfo"}

// Transaction type labels that identify a utility purchase when nothing
// else does.
var utilityTypeLabels = map[string]bool{
	"airtime":     true,
	"data":        true,
	"electricity": true,
	"cable tv":    true,
	"internet":    true,
	"betting":     true,
	"education":   true,
	"other":       true,
}

// Classify determines the transaction category from the raw envelope.
// Rules apply in order, first match wins:
//  1. explicit withdrawal flag, or fiat currency + "withdrawal" in the type
//  2. explicit valid category tag on the detail
//  3. detail key heuristics (token keys, then utility keys)
//  4. utility type-label fallback, otherwise token
func Classify(env dto.Envelope) dto.Category {
	detail := env.Details
	typeText := strings.ToLower(env.Type)

	if hasWithdrawalFlag(detail) {
		return dto.CategoryWithdrawal
	}
	if fiatCodes[detailCurrency(detail)] && strings.Contains(typeText, "withdrawal") {
		return dto.CategoryWithdrawal
	}

	if tag := explicitTag(detail); tag.Valid() {
		return tag
	}

	for _, key := range tokenKeys {
		if v, ok := detail[key]; ok && resolve.Present(v) {
			return dto.CategoryToken
		}
	}
	for _, key := range utilityKeys {
		if v, ok := detail[key]; ok && resolve.Present(v) {
			return dto.CategoryUtility
		}
	}

	if utilityTypeLabels[strings.TrimSpace(typeText)] {
		return dto.CategoryUtility
	}
	return dto.CategoryToken
}

func hasWithdrawalFlag(detail map[string]any) bool {
	for _, flag := range withdrawalFlags {
		if v, ok := detail[flag].(bool); ok && v {
			return true
		}
	}
	return false
}

func detailCurrency(detail map[string]any) string {
	ccy, _ := detail["currency"].(string)
	return strings.ToUpper(strings.TrimSpace(ccy))
}

func explicitTag(detail map[string]any) dto.Category {
	for _, key := range []string{"category", "detailType"} {
		if tag, ok := detail[key].(string); ok {
			c := dto.Category(strings.ToLower(strings.TrimSpace(tag)))
			if c.Valid() {
				return c
			}
		}
	}
	return ""
}
