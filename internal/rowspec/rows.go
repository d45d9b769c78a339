// Package rowspec turns a merged transaction record into the ordered,
// category-aware row list both renderers consume. The list is built once
// per invocation; absent optional fields are omitted entirely, never
// rendered blank.
package rowspec

import (
	"strconv"

	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/internal/format"
	"github.com/centavault/wallet-backend/pkg/helpers"
)

// Summary extracts the envelope digest shown above the rows.
func Summary(env dto.Envelope) dto.ReceiptSummary {
	date := env.Date
	if date == "" {
		date = env.CreatedAt
	}
	return dto.ReceiptSummary{
		Type:   env.Type,
		Amount: env.Amount,
		Status: env.Status,
		Date:   date,
	}
}

// Build produces the canonical row list. Row order is fixed per category
// and identical between the interactive list and the exported document.
func Build(env dto.Envelope, md dto.MergedDetail, f *format.Formatter) []dto.CanonicalRow {
	b := &builder{f: f}

	b.add("Type", env.Type)
	date := env.Date
	if date == "" {
		date = env.CreatedAt
	}
	b.add("Date", date)

	switch md.Category {
	case dto.CategoryWithdrawal:
		b.withdrawalRows(md.Withdrawal)
	case dto.CategoryUtility:
		b.utilityRows(md.Utility)
	default:
		b.tokenRows(md.Token, md.Swap)
	}

	return b.rows
}

type builder struct {
	f    *format.Formatter
	rows []dto.CanonicalRow
}

func (b *builder) add(label, value string) {
	if value == "" {
		return
	}
	b.rows = append(b.rows, dto.CanonicalRow{Label: label, Value: value})
}

func (b *builder) addCopyable(label, value string) {
	if value == "" {
		return
	}
	b.rows = append(b.rows, dto.CanonicalRow{
		Label:    label,
		Value:    value,
		Copyable: helpers.Ptr(value),
	})
}

// addMaskedCopyable shows the lead…tail form but keeps the full value on
// the clipboard action.
func (b *builder) addMaskedCopyable(label, value, explorerURL string) {
	if value == "" {
		return
	}
	row := dto.CanonicalRow{
		Label:    label,
		Value:    format.MaskMiddle(value, 6, 4),
		Copyable: helpers.Ptr(value),
	}
	if explorerURL != "" {
		row.ExplorerURL = helpers.Ptr(explorerURL)
	}
	b.rows = append(b.rows, row)
}

func (b *builder) withdrawalRows(w *dto.WithdrawalDetail) {
	if w == nil {
		return
	}
	ccy := helpers.Value(w.Currency)

	b.addCopyable("Reference", helpers.Value(w.Reference))
	b.add("Bank Name", helpers.Value(w.BankName))
	b.add("Account Name", helpers.Value(w.AccountName))
	b.addCopyable("Account Number", helpers.Value(w.AccountNumber))
	if amt := helpers.Value(w.AmountSentToBank); amt != "" {
		b.add("Sent to Bank", b.f.AmountWithSymbol(amt, ccy))
	}
	if fee := helpers.Value(w.WithdrawalFee); fee != "" {
		b.add("Withdrawal Fee", b.f.AmountWithSymbol(fee, ccy))
	}
	b.add("Currency", ccy)
}

func (b *builder) tokenRows(tk *dto.TokenDetail, swap *dto.SwapInfo) {
	if tk == nil {
		return
	}
	ccy := helpers.Value(tk.Currency)

	if swap != nil {
		// Swap receipts show the two legs in place of the
		// transaction-id/address/narration rows.
		b.add("From", b.f.AmountWithSymbol(floatText(swap.FromAmount), swap.FromCurrency))
		b.add("To", b.f.AmountWithSymbol(floatText(swap.ToAmount), swap.ToCurrency))
	} else {
		b.addCopyable("Transaction ID", helpers.Value(tk.TransactionID))
		b.addMaskedCopyable("Address", helpers.Value(tk.Address), "")
		b.add("Narration", helpers.Value(tk.Narration))
	}

	b.add("Currency", ccy)
	b.add("Network", helpers.Value(tk.Network))

	if hash := helpers.Value(tk.Hash); hash != "" {
		url := format.ExplorerURL(helpers.Value(tk.Network), hash)
		b.addMaskedCopyable("Hash", hash, url)
	}
	if fee := helpers.Value(tk.Fee); fee != "" {
		b.add("Fee", b.f.AmountWithSymbol(fee, ccy))
	}
}

func (b *builder) utilityRows(u *dto.UtilityDetail) {
	if u == nil {
		return
	}
	b.addCopyable("Order ID", helpers.Value(u.OrderID))
	b.add("Product", helpers.Value(u.ProductName))
	b.add("Quantity", helpers.Value(u.Quantity))
	b.add("Network", helpers.Value(u.Network))
	b.add("Customer", helpers.Value(u.CustomerInfo))
	b.add("Bill Type", helpers.Value(u.BillType))
	b.add("Pay Currency", helpers.Value(u.PayCurrency))
}

func floatText(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
