package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/centavault/wallet-backend/internal/dto"
)

func TestClassifyWithdrawalFlagWinsRegardlessOfOtherFields(t *testing.T) {
	env := dto.Envelope{
		Type: "Crypto Transfer",
		Details: map[string]any{
			"isWithdrawalFlag": true,
			"transactionId":    "tx-1",
			"hash":             "0xabc",
			"orderId":          "ord-1",
			"category":         "token",
		},
	}
	assert.Equal(t, dto.CategoryWithdrawal, Classify(env))
}

func TestClassifyNGNZWithdrawalFlag(t *testing.T) {
	env := dto.Envelope{
		Type:    "Withdrawal",
		Details: map[string]any{"isNGNZWithdrawal": true},
	}
	assert.Equal(t, dto.CategoryWithdrawal, Classify(env))
}

func TestClassifyFiatCurrencyWithWithdrawalType(t *testing.T) {
	env := dto.Envelope{
		Type:    "NGN Withdrawal",
		Details: map[string]any{"currency": "NGN"},
	}
	assert.Equal(t, dto.CategoryWithdrawal, Classify(env))

	// Fiat currency alone is not enough without the type text.
	env = dto.Envelope{
		Type:    "Deposit",
		Details: map[string]any{"currency": "NGN"},
	}
	assert.NotEqual(t, dto.CategoryWithdrawal, Classify(env))
}

func TestClassifyExplicitTag(t *testing.T) {
	env := dto.Envelope{
		Type:    "Bill Payment",
		Details: map[string]any{"category": "utility"},
	}
	assert.Equal(t, dto.CategoryUtility, Classify(env))

	// Invalid tags are ignored and heuristics take over.
	env = dto.Envelope{
		Type:    "Transfer",
		Details: map[string]any{"category": "ELECTRICITY", "hash": "0xabc"},
	}
	assert.Equal(t, dto.CategoryToken, Classify(env))
}

func TestClassifyKeyHeuristics(t *testing.T) {
	token := dto.Envelope{
		Type:    "Transfer",
		Details: map[string]any{"hash": "0xabc"},
	}
	assert.Equal(t, dto.CategoryToken, Classify(token))

	utility := dto.Envelope{
		Type:    "Purchase",
		Details: map[string]any{"orderId": "ord-9", "productName": "MTN 2GB"},
	}
	assert.Equal(t, dto.CategoryUtility, Classify(utility))

	// Empty values do not trigger the heuristic.
	blank := dto.Envelope{
		Type:    "Purchase",
		Details: map[string]any{"hash": "", "orderId": "ord-9"},
	}
	assert.Equal(t, dto.CategoryUtility, Classify(blank))
}

func TestClassifyTypeLabelFallback(t *testing.T) {
	for _, label := range []string{"Airtime", "data", "Electricity", "Cable TV", "internet", "Betting", "education", "Other"} {
		env := dto.Envelope{Type: label}
		assert.Equal(t, dto.CategoryUtility, Classify(env), "type %q", label)
	}

	env := dto.Envelope{Type: "Received BTC"}
	assert.Equal(t, dto.CategoryToken, Classify(env))

	assert.Equal(t, dto.CategoryToken, Classify(dto.Envelope{}))
}
