package rowspec

import (
	"reflect"
	"testing"

	"github.com/centavault/wallet-backend/internal/classify"
	"github.com/centavault/wallet-backend/internal/dto"
	"github.com/centavault/wallet-backend/internal/format"
	"github.com/centavault/wallet-backend/internal/normalize"
)

func testFormatter() *format.Formatter {
	return format.New(map[string]string{"NGN": "₦", "NGNZ": "₦"})
}

func labels(rows []dto.CanonicalRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Label
	}
	return out
}

func find(rows []dto.CanonicalRow, label string) *dto.CanonicalRow {
	for i := range rows {
		if rows[i].Label == label {
			return &rows[i]
		}
	}
	return nil
}

func TestBuildWithdrawalRowOrderOmitsAbsentReference(t *testing.T) {
	env := dto.Envelope{
		Type:   "Withdrawal",
		Status: "Successful",
		Amount: "-₦10,000",
		Date:   "2024-01-01",
		Details: map[string]any{
			"isNGNZWithdrawal": true,
			"bankName":         "Zenith",
			"accountName":      "Jane Doe",
			"accountNumber":    "0123456789",
			"amountSentToBank": float64(10000),
			"withdrawalFee":    float64(50),
			"currency":         "NGN",
		},
	}

	category := classify.Classify(env)
	if category != dto.CategoryWithdrawal {
		t.Fatalf("category = %q, want withdrawal", category)
	}
	md := normalize.Merge(env, nil, category)
	rows := Build(env, md, testFormatter())

	want := []string{"Type", "Date", "Bank Name", "Account Name", "Account Number",
		"Sent to Bank", "Withdrawal Fee", "Currency"}
	if got := labels(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}

	if got := find(rows, "Sent to Bank").Value; got != "₦10,000" {
		t.Fatalf("Sent to Bank = %q, want ₦10,000", got)
	}
	if got := find(rows, "Withdrawal Fee").Value; got != "₦50" {
		t.Fatalf("Withdrawal Fee = %q, want ₦50", got)
	}

	acct := find(rows, "Account Number")
	if acct.Copyable == nil || *acct.Copyable != "0123456789" {
		t.Fatalf("Account Number should carry a copy action, got %+v", acct)
	}
}

func TestBuildTokenRows(t *testing.T) {
	env := dto.Envelope{
		ID:     "9f2c4a1e-77aa-4c2f-9d3e-5b6a7c8d9e0f",
		Type:   "Crypto Transfer",
		Status: "Successful",
		Amount: "250 USDT",
		Date:   "2024-02-02",
		Details: map[string]any{
			"currency": "USDT",
			"network":  "tron",
			"address":  "TQrYKk9tBqVXnS3eWMcu4QJZyVMxX1A2b3",
			"hash":     "4e0b5d6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d",
			"fee":      float64(1),
		},
	}

	md := normalize.Merge(env, nil, dto.CategoryToken)
	rows := Build(env, md, testFormatter())

	want := []string{"Type", "Date", "Transaction ID", "Address", "Currency", "Network", "Hash", "Fee"}
	if got := labels(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}

	addr := find(rows, "Address")
	if addr.Value != format.MaskMiddle("TQrYKk9tBqVXnS3eWMcu4QJZyVMxX1A2b3", 6, 4) {
		t.Fatalf("Address should be masked, got %q", addr.Value)
	}
	if addr.Copyable == nil || *addr.Copyable != "TQrYKk9tBqVXnS3eWMcu4QJZyVMxX1A2b3" {
		t.Fatal("Address copy action should hold the full value")
	}

	hash := find(rows, "Hash")
	if hash.ExplorerURL == nil {
		t.Fatal("Hash row should carry an explorer link for Tron")
	}
	wantURL := "https://tronscan.org/#/transaction/4e0b5d6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d"
	if *hash.ExplorerURL != wantURL {
		t.Fatalf("explorer URL = %q, want %q", *hash.ExplorerURL, wantURL)
	}

	if got := find(rows, "Fee").Value; got != "1 USDT" {
		t.Fatalf("Fee = %q, want 1 USDT", got)
	}
}

func TestBuildTokenUnknownNetworkDisablesLink(t *testing.T) {
	env := dto.Envelope{
		ID:   "tx-1",
		Type: "Crypto Transfer",
		Date: "2024-02-02",
		Details: map[string]any{
			"network": "UNKNOWNCHAIN",
			"hash":    "abc1234567890",
		},
	}

	md := normalize.Merge(env, nil, dto.CategoryToken)
	rows := Build(env, md, testFormatter())

	hash := find(rows, "Hash")
	if hash == nil {
		t.Fatal("Hash row missing")
	}
	if hash.ExplorerURL != nil {
		t.Fatalf("unknown network must not get a link, got %q", *hash.ExplorerURL)
	}
}

func TestBuildSwapReplacesIdentityRows(t *testing.T) {
	env := dto.Envelope{
		Type: "Swap",
		Date: "2024-03-03",
		Details: map[string]any{
			"narration": "Swapped 1.5 BTC to 45000 USDT",
		},
	}

	md := normalize.Merge(env, nil, dto.CategoryToken)
	rows := Build(env, md, testFormatter())

	got := labels(rows)
	want := []string{"Type", "Date", "From", "To"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	if find(rows, "From").Value != "1.5 BTC" || find(rows, "To").Value != "45000 USDT" {
		t.Fatalf("swap legs wrong: %+v", rows)
	}
}

func TestBuildUtilityRows(t *testing.T) {
	env := dto.Envelope{
		Type: "Airtime",
		Date: "2024-04-04",
		Details: map[string]any{
			"orderId":      "ord-55",
			"productName":  "MTN Airtime 500",
			"network":      "MTN",
			"customerInfo": "08031234567",
			"billType":     "airtime",
			"payCurrency":  "NGN",
		},
	}

	md := normalize.Merge(env, nil, dto.CategoryUtility)
	rows := Build(env, md, testFormatter())

	// Quantity is absent from the input and must be omitted, not blank.
	want := []string{"Type", "Date", "Order ID", "Product", "Network", "Customer", "Bill Type", "Pay Currency"}
	if got := labels(rows); !reflect.DeepEqual(got, want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	env := dto.Envelope{
		ID:   "tx-1",
		Type: "Crypto Transfer",
		Date: "2024-02-02",
		Details: map[string]any{
			"currency": "USDT",
			"network":  "tron",
			"hash":     "4e0b5d6f7a8b9c0d1e2f3a4b5c6d7e8f9a0b1c2d",
		},
	}
	md := normalize.Merge(env, nil, dto.CategoryToken)

	first := Build(env, md, testFormatter())
	second := Build(env, md, testFormatter())
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Build is not deterministic:\n%+v\n%+v", first, second)
	}
}

func TestSummary(t *testing.T) {
	env := dto.Envelope{Type: "Swap", Amount: "1.5 BTC", Status: "Pending", CreatedAt: "2024-05-05"}
	sum := Summary(env)
	if sum.Date != "2024-05-05" {
		t.Fatalf("Summary should fall back to createdAt, got %q", sum.Date)
	}
	if sum.Amount != "1.5 BTC" || sum.Status != "Pending" {
		t.Fatalf("unexpected summary: %+v", sum)
	}
}
