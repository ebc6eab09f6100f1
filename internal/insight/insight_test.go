package insight

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

func testAccount() *models.Account {
	return &models.Account{
		ID:      "acct-1",
		Name:    "Operating Account",
		Balance: decimal.NewFromInt(15000),
	}
}

func txn(daysAgo int, amount int64, typ models.TransactionType, desc string) *models.Transaction {
	return &models.Transaction{
		AccountID:   "acct-1",
		Date:        time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		Amount:      decimal.NewFromInt(amount),
		Type:        typ,
		Description: desc,
	}
}

func TestNoActivity(t *testing.T) {
	got := BuildAccountInsight(testAccount(), nil)
	want := "No recent transactions found for this account. The balance appears stable with no recent activity."
	if got != want {
		t.Errorf("No-activity message mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}

func TestSpendingExceedsIncome(t *testing.T) {
	txns := []*models.Transaction{
		txn(3, 5000, models.TypeCredit, "Initial funding"),
		txn(2, 1200, models.TypeDebit, "Cloud hosting"),
		txn(1, 4800, models.TypeDebit, "Payroll"),
	}

	got := BuildAccountInsight(testAccount(), txns)

	if !strings.Contains(got, "Analyzing last 3 transactions for account 'Operating Account'.") {
		t.Errorf("Missing analysis line:\n%s", got)
	}
	if !strings.Contains(got, "Current balance: $15000.00.") {
		t.Errorf("Missing balance line:\n%s", got)
	}
	if !strings.Contains(got, "Recent credits total: $5000.00. Recent debits total: $6000.00.") {
		t.Errorf("Missing totals line:\n%s", got)
	}
	if !strings.Contains(got, "Spending is higher than income") {
		t.Errorf("Expected spending trend:\n%s", got)
	}
	if !strings.Contains(got, "Most recent transaction: Debit of $4800.00 on 2025-06-29, 'Payroll'.") {
		t.Errorf("Missing latest transaction line:\n%s", got)
	}
}

func TestIncomeExceedsSpending(t *testing.T) {
	txns := []*models.Transaction{
		txn(2, 300, models.TypeDebit, "Snacks"),
		txn(1, 1000, models.TypeCredit, "Invoice paid"),
	}

	got := BuildAccountInsight(testAccount(), txns)
	if !strings.Contains(got, "Income is higher than spending") {
		t.Errorf("Expected income trend:\n%s", got)
	}
	if !strings.Contains(got, "Most recent transaction: Credit of $1000.00 on 2025-06-29, 'Invoice paid'.") {
		t.Errorf("Missing latest transaction line:\n%s", got)
	}
}

func TestWindowCapsAtTwenty(t *testing.T) {
	var txns []*models.Transaction
	for i := 0; i < 30; i++ {
		txns = append(txns, txn(i, 10, models.TypeCredit, "Drip"))
	}

	got := BuildAccountInsight(testAccount(), txns)
	if !strings.Contains(got, "Analyzing last 20 transactions") {
		t.Errorf("Expected window cap of 20:\n%s", got)
	}
	// 20 newest credits of 10 each.
	if !strings.Contains(got, "Recent credits total: $200.00.") {
		t.Errorf("Expected totals over the capped window:\n%s", got)
	}
}

func TestDeterministic(t *testing.T) {
	txns := []*models.Transaction{
		txn(3, 5000, models.TypeCredit, "Initial funding"),
		txn(2, 1200, models.TypeDebit, "Cloud hosting"),
		txn(1, 800, models.TypeDebit, "SaaS subscriptions"),
	}

	first := BuildAccountInsight(testAccount(), txns)
	second := BuildAccountInsight(testAccount(), txns)
	if first != second {
		t.Error("Expected byte-identical output for identical input")
	}
}

func TestInputOrderIrrelevant(t *testing.T) {
	a := []*models.Transaction{
		txn(3, 100, models.TypeCredit, "A"),
		txn(1, 50, models.TypeDebit, "B"),
		txn(2, 75, models.TypeCredit, "C"),
	}
	b := []*models.Transaction{a[1], a[2], a[0]}

	if BuildAccountInsight(testAccount(), a) != BuildAccountInsight(testAccount(), b) {
		t.Error("Expected output to be independent of input ordering")
	}
}
