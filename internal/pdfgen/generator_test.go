package pdfgen

import (
	"bytes"
	"context"
	"testing"

	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/pkg/helpers"
)

func TestGenerateProducesPDF(t *testing.T) {
	doc := dto.ReceiptDocument{
		Summary: dto.ReceiptSummary{Type: "Withdrawal", Amount: "-₦10,000", Status: "Successful", Date: "2024-01-01"},
		Rows: []dto.CanonicalRow{
			{Label: "Type", Value: "Withdrawal"},
			{Label: "Bank Name", Value: "Zenith"},
			{Label: "Hash", Value: "4e0b5d…1c2d", Copyable: helpers.Ptr("full-hash"),
				ExplorerURL: helpers.Ptr("https://tronscan.org/#/transaction/full-hash")},
		},
		Title:    "Transaction Receipt",
		Filename: "receipt.pdf",
	}

	out, err := New().Generate(context.Background(), doc)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", out[:min(len(out), 8)])
	}
}

func TestGenerateEmptyRowsStillProducesDocument(t *testing.T) {
	doc := dto.ReceiptDocument{
		Summary: dto.ReceiptSummary{Amount: "--", Status: "Pending"},
		Title:   "Transaction Receipt",
	}
	out, err := New().Generate(context.Background(), doc)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty output")
	}
}
