package dto

// SwapInfo is a structured swap leg pair, either resolved from explicit
// swapDetails fields or recovered from free-text narration.
type SwapInfo struct {
	FromAmount   float64 `json:"fromAmount"`
	FromCurrency string  `json:"fromCurrency"`
	ToAmount     float64 `json:"toAmount"`
	ToCurrency   string  `json:"toCurrency"`
}

// TokenDetail holds the resolved fields of a crypto transfer or swap.
// Amount-like fields keep their raw textual value; formatting happens at
// row-building time so both renderers reuse the same source value.
type TokenDetail struct {
	TransactionID *string
	Currency      *string
	Network       *string // display-ready, already prettified
	Address       *string
	Hash          *string
	Fee           *string
	Narration     *string
}

// UtilityDetail holds the resolved fields of a bill payment.
type UtilityDetail struct {
	OrderID      *string
	ProductName  *string
	Quantity     *string
	Network      *string
	CustomerInfo *string
	BillType     *string
	PayCurrency  *string
}

// WithdrawalDetail holds the resolved fields of a fiat withdrawal.
type WithdrawalDetail struct {
	Reference        *string
	BankName         *string
	AccountName      *string
	AccountNumber    *string
	AmountSentToBank *string
	WithdrawalFee    *string
	Currency         *string
}

// MergedDetail is the canonical record produced by the normalizer: a tagged
// union over the three detail variants, with exactly the variant matching
// Category populated. Built once per screen invocation, immutable after.
type MergedDetail struct {
	Category   Category
	Token      *TokenDetail
	Utility    *UtilityDetail
	Withdrawal *WithdrawalDetail
	Swap       *SwapInfo
}

// CanonicalRow is the unit shared between the interactive list and the
// exported document. Copyable carries the exact string to place on the
// clipboard; ExplorerURL is set only when a block explorer is known for
// the transaction's network.
type CanonicalRow struct {
	Label       string  `json:"label"`
	Value       string  `json:"value"`
	Copyable    *string `json:"copyable,omitempty"`
	ExplorerURL *string `json:"explorerUrl,omitempty"`
}

// ReceiptSummary is the envelope digest both renderers show above the rows.
type ReceiptSummary struct {
	Type   string `json:"type"`
	Amount string `json:"amount"`
	Status string `json:"status"`
	Date   string `json:"date"`
}
