// Package document renders an already-canonical row list into a
// stand-alone HTML receipt. It is a pure presentation transform: nothing is
// resolved here, so the document cannot diverge from the on-screen list.
package document

import (
	"html/template"
	"strings"

	"github.com/centavault/wallet-backend/internal/dto"
)

var receiptTemplate = template.Must(template.New("receipt").Funcs(template.FuncMap{
	"statusClass": statusClass,
}).Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
  body { font-family: -apple-system, Helvetica, Arial, sans-serif; margin: 0; padding: 24px; color: #1a1a2e; }
  .header { text-align: center; padding-bottom: 16px; border-bottom: 1px solid #e5e7eb; }
  .header h1 { font-size: 18px; margin: 0 0 8px; }
  .amount { font-size: 28px; font-weight: 700; margin: 8px 0; }
  .status { display: inline-block; padding: 4px 12px; border-radius: 12px; font-size: 13px; }
  .status.success { background: #e7f7ef; color: #0e9f6e; }
  .status.failed { background: #fde8e8; color: #e02424; }
  .status.pending { background: #fdf6b2; color: #8e4b10; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  td { padding: 10px 0; border-bottom: 1px solid #f3f4f6; font-size: 14px; }
  td.label { color: #6b7280; }
  td.value { text-align: right; font-weight: 500; word-break: break-all; }
  .footer { margin-top: 24px; text-align: center; color: #9ca3af; font-size: 12px; }
</style>
</head>
<body>
<div class="header">
  <h1>{{.Title}}</h1>
  <div class="amount">{{.Summary.Amount}}</div>
  <span class="status {{statusClass .Summary.Status}}">{{.Summary.Status}}</span>
</div>
<table>
{{range .Rows}}  <tr><td class="label">{{.Label}}</td><td class="value">{{.Value}}</td></tr>
{{end}}</table>
<div class="footer">{{.Footer}}</div>
</body>
</html>
`))

type templateData struct {
	Title   string
	Summary dto.ReceiptSummary
	Rows    []dto.CanonicalRow
	Footer  string
}

// Renderer produces the shareable HTML receipt body.
type Renderer struct {
	title  string
	footer string
}

func NewRenderer(title string) *Renderer {
	return &Renderer{
		title:  title,
		footer: "This receipt was generated from your wallet transaction history.",
	}
}

// Render builds the complete document from the same summary and rows the
// interactive list consumed.
func (r *Renderer) Render(sum dto.ReceiptSummary, rows []dto.CanonicalRow) (string, error) {
	var b strings.Builder
	err := receiptTemplate.Execute(&b, templateData{
		Title:   r.title,
		Summary: sum,
		Rows:    rows,
		Footer:  r.footer,
	})
	if err != nil {
		return "", err
	}
	return b.String(), nil
}

func statusClass(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "successful", "success", "completed":
		return "success"
	case "failed", "reversed", "declined":
		return "failed"
	default:
		return "pending"
	}
}
