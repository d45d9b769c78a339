package dto

import "encoding/json"

// Category discriminates the three receipt families the wallet renders.
type Category string

const (
	CategoryToken      Category = "token"
	CategoryUtility    Category = "utility"
	CategoryWithdrawal Category = "withdrawal"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryToken, CategoryUtility, CategoryWithdrawal:
		return true
	}
	return false
}

// Envelope is the primary transaction record handed over by the mobile
// client. Details is the category-discriminated payload; its shape varies
// per backend, so it stays opaque until classification.
type Envelope struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Status    string         `json:"status"`
	Amount    string         `json:"amount"` // pre-formatted display string
	Date      string         `json:"date"`
	CreatedAt string         `json:"createdAt,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
}

// RawPayload is the opaque passthrough record from the originating backend
// call. Consulted last during field resolution, by flat name and then by
// dotted path (e.g. "receiptData.bankName").
type RawPayload = map[string]any

// ReceiptRequest carries a serialized Envelope plus the optional raw
// payload, exactly as the navigation layer passes them between screens.
type ReceiptRequest struct {
	Envelope json.RawMessage `json:"envelope"`
	Raw      RawPayload      `json:"raw,omitempty"`
}
