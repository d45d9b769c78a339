// Package normalize reconciles an envelope, its detail payload and the raw
// backend record into one canonical MergedDetail.
package normalize

import (
	"strconv"

	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/internal/format"
	"github.com/centavault/wallet-backend/internal/resolve"
)

// Candidate name lists per logical field. Order matters: earlier names are
// the canonical spellings, later ones cover older backends. Dotted names
// are only consulted against the raw payload.
var (
	tokenCandidates = map[string][]string{
		"transactionId": {"transactionId", "txId", "externalId", "reference", "id", "_id"},
		"currency":      {"currency", "asset", "coin"},
		"network":       {"network", "chain", "blockchain"},
		"address":       {"address", "walletAddress", "toAddress", "destinationAddress"},
		"hash":          {"hash", "txHash", "transactionHash"},
		"fee":           {"fee", "networkFee", "transactionFee"},
		"narration":     {"narration", "note", "description", "memo"},
	}

	utilityCandidates = map[string][]string{
		"orderId":      {"orderId", "orderReference", "reference"},
		"productName":  {"productName", "product", "plan"},
		"quantity":     {"quantity", "qty", "units"},
		"network":      {"network", "provider", "biller"},
		"customerInfo": {"customerInfo", "customerId", "phoneNumber", "smartCardNumber", "meterNumber"},
		"billType":     {"billType", "billerType"},
		"payCurrency":  {"payCurrency", "currency"},
	}

	withdrawalCandidates = map[string][]string{
		"reference":        {"withdrawalReference", "reference", "sessionId", "receiptData.reference"},
		"bankName":         {"bankName", "bank", "receiptData.bankName"},
		"accountName":      {"accountName", "beneficiaryName", "receiptData.accountName"},
		"accountNumber":    {"accountNumber", "accountNo", "receiptData.accountNumber"},
		"amountSentToBank": {"amountSentToBank", "amountSent", "netAmount"},
		"withdrawalFee":    {"withdrawalFee", "charge", "fee"},
		"currency":         {"currency", "payCurrency"},
	}
)

// Merge builds the canonical record for an already-classified envelope.
// One resolver pass per logical field; network names are prettified inline
// while amount-like fields keep their raw value so both renderers format
// from the same source at row-building time.
func Merge(env dto.Envelope, raw dto.RawPayload, category dto.Category) dto.MergedDetail {
	envFields := envelopeFields(env)
	detail := env.Details

	md := dto.MergedDetail{Category: category}

	switch category {
	case dto.CategoryWithdrawal:
		md.Withdrawal = &dto.WithdrawalDetail{
			Reference:        lookup(envFields, detail, raw, withdrawalCandidates["reference"]),
			BankName:         lookup(envFields, detail, raw, withdrawalCandidates["bankName"]),
			AccountName:      lookup(envFields, detail, raw, withdrawalCandidates["accountName"]),
			AccountNumber:    lookup(envFields, detail, raw, withdrawalCandidates["accountNumber"]),
			AmountSentToBank: lookup(envFields, detail, raw, withdrawalCandidates["amountSentToBank"]),
			WithdrawalFee:    lookup(envFields, detail, raw, withdrawalCandidates["withdrawalFee"]),
			Currency:         lookup(envFields, detail, raw, withdrawalCandidates["currency"]),
		}

	case dto.CategoryUtility:
		md.Utility = &dto.UtilityDetail{
			OrderID:      lookup(envFields, detail, raw, utilityCandidates["orderId"]),
			ProductName:  lookup(envFields, detail, raw, utilityCandidates["productName"]),
			Quantity:     lookup(envFields, detail, raw, utilityCandidates["quantity"]),
			Network:      prettify(lookup(envFields, detail, raw, utilityCandidates["network"])),
			CustomerInfo: lookup(envFields, detail, raw, utilityCandidates["customerInfo"]),
			BillType:     lookup(envFields, detail, raw, utilityCandidates["billType"]),
			PayCurrency:  lookup(envFields, detail, raw, utilityCandidates["payCurrency"]),
		}

	default: // token
		td := &dto.TokenDetail{
			TransactionID: lookup(envFields, detail, raw, tokenCandidates["transactionId"]),
			Currency:      lookup(envFields, detail, raw, tokenCandidates["currency"]),
			Network:       prettify(lookup(envFields, detail, raw, tokenCandidates["network"])),
			Address:       lookup(envFields, detail, raw, tokenCandidates["address"]),
			Hash:          lookup(envFields, detail, raw, tokenCandidates["hash"]),
			Fee:           lookup(envFields, detail, raw, tokenCandidates["fee"]),
			Narration:     lookup(envFields, detail, raw, tokenCandidates["narration"]),
		}
		md.Token = td
		md.Swap = resolveSwap(detail, raw, td.Narration)
	}

	return md
}

// resolveSwap prefers structured swapDetails; free-text narration parsing
// is the fallback and its misses stay silent.
func resolveSwap(detail map[string]any, raw dto.RawPayload, narration *string) *dto.SwapInfo {
	for _, source := range []map[string]any{detail, raw} {
		if source == nil {
			continue
		}
		sub, ok := source["swapDetails"].(map[string]any)
		if !ok {
			continue
		}
		swap, ok := structuredSwap(sub)
		if ok {
			return swap
		}
	}

	if narration != nil {
		if parsed := format.ParseSwapNarration(*narration); parsed != nil {
			return &dto.SwapInfo{
				FromAmount:   parsed.FromAmount,
				FromCurrency: parsed.FromCurrency,
				ToAmount:     parsed.ToAmount,
				ToCurrency:   parsed.ToCurrency,
			}
		}
	}
	return nil
}

func structuredSwap(sub map[string]any) (*dto.SwapInfo, bool) {
	fromAmount, ok1 := asFloat(firstPresent(sub, "fromAmount", "sourceAmount"))
	toAmount, ok2 := asFloat(firstPresent(sub, "toAmount", "destinationAmount"))
	fromCcy := asString(firstPresent(sub, "fromCurrency", "sourceCurrency"))
	toCcy := asString(firstPresent(sub, "toCurrency", "destinationCurrency"))
	if !ok1 || !ok2 || fromCcy == "" || toCcy == "" {
		return nil, false
	}
	return &dto.SwapInfo{
		FromAmount:   fromAmount,
		FromCurrency: fromCcy,
		ToAmount:     toAmount,
		ToCurrency:   toCcy,
	}, true
}

// envelopeFields exposes the typed envelope to the resolver under its
// canonical field names.
func envelopeFields(env dto.Envelope) map[string]any {
	return map[string]any{
		"id":        env.ID,
		"type":      env.Type,
		"status":    env.Status,
		"amount":    env.Amount,
		"date":      env.Date,
		"createdAt": env.CreatedAt,
	}
}

func lookup(envelope, detail, raw map[string]any, names []string) *string {
	v, ok := resolve.Resolve(envelope, detail, raw, names)
	if !ok {
		return nil
	}
	s := asString(v)
	if s == "" {
		return nil
	}
	return &s
}

func prettify(network *string) *string {
	if network == nil {
		return nil
	}
	pretty := format.PrettyNetworkName(*network)
	return &pretty
}

func firstPresent(m map[string]any, names ...string) any {
	for _, name := range names {
		if v, ok := m[name]; ok && resolve.Present(v) {
			return v
		}
	}
	return nil
}

func asString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

func asFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
