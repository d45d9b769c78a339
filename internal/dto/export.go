package dto

// ReceiptDocument is the fully-resolved input handed to the export
// pipeline: the same summary and row list the on-screen renderer consumed,
// plus share metadata. The generator must not resolve anything further.
type ReceiptDocument struct {
	Summary  ReceiptSummary
	Rows     []CanonicalRow
	Title    string
	Filename string
}

// SharedDocument is the generated artifact the share facility receives.
type SharedDocument struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Bytes    []byte `json:"-"`
	Summary  string `json:"summary"` // textual fallback for basic share
}

// ReceiptRowsResponse is the UI-facing output: the canonical row list and
// summary, or an explicit no-data state when the envelope was unusable.
type ReceiptRowsResponse struct {
	Category Category       `json:"category,omitempty"`
	Summary  ReceiptSummary `json:"summary"`
	Rows     []CanonicalRow `json:"rows"`
	NoData   bool           `json:"noData,omitempty"`
	Message  string         `json:"message,omitempty"`
}
