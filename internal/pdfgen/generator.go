// Package pdfgen renders the canonical receipt into a PDF for the export
// pipeline. It consumes the same row list as the other renderers and
// resolves nothing on its own.
package pdfgen

import (
	"bytes"
	"context"

	"github.com/go-pdf/fpdf"

	"github.com/centavault/wallet-backend/internal/dto"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate lays out header, status, row table and footer on an A4 page.
func (g *Generator) Generate(_ context.Context, doc dto.ReceiptDocument) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// Core fonts are cp1252; the translator keeps what it can and drops the rest.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, tr(doc.Summary.Amount), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 8, tr(doc.Summary.Status), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetTextColor(0, 0, 0)
	for _, row := range doc.Rows {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(110, 110, 110)
		pdf.CellFormat(55, 8, tr(row.Label), "", 0, "L", false, 0, "")

		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(20, 20, 20)
		link := ""
		if row.ExplorerURL != nil {
			link = *row.ExplorerURL
		}
		pdf.CellFormat(0, 8, tr(row.Value), "", 1, "R", false, 0, link)

		x, y := pdf.GetX(), pdf.GetY()
		pdf.SetDrawColor(235, 235, 235)
		pdf.Line(x, y, 190, y)
	}

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 6, "This receipt was generated from your wallet transaction history.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
