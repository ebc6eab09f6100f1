package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a transaction as money in or money out.
// Amounts are stored as non-negative magnitudes; the sign is applied via
// the type when adjusting the account balance.
type TransactionType string

const (
	TypeCredit TransactionType = "Credit"
	TypeDebit  TransactionType = "Debit"
)

// ParseTransactionType normalizes a case-insensitive type string.
// Returns false for anything other than Credit/Debit.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch strings.ToLower(s) {
	case "credit":
		return TypeCredit, true
	case "debit":
		return TypeDebit, true
	default:
		return "", false
	}
}

// Transaction is a single credit or debit against an account.
// Transactions are append-only: the API surface creates them but never
// updates or deletes them.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string `json:"id"`

	// AccountID is the owning account.
	AccountID string `json:"accountId"`

	// Date is when the transaction occurred (defaults to creation time).
	Date time.Time `json:"date"`

	// Amount is the non-negative magnitude.
	Amount decimal.Decimal `json:"amount"`

	// Type is Credit or Debit.
	Type TransactionType `json:"type"`

	// Description is a free-form label.
	Description string `json:"description"`
}

// SignedAmount returns the amount with the sign implied by the type:
// positive for credits, negative for debits.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}
