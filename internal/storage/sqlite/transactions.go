package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ggodin1981/NextGenSaaSEnterprisePlatform-Backend/internal/models"
)

// CreateTransaction inserts the transaction and applies balanceDelta to
// the owning account's balance inside a single SQL transaction. This is
// the commit boundary for the whole write batch: on any failure the
// insert and the balance update both roll back.
func (s *SQLiteStore) CreateTransaction(ctx context.Context, txn *models.Transaction, balanceDelta decimal.Decimal) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Balances are exact decimal strings, so the arithmetic happens here
	// rather than in SQL (SQLite would coerce TEXT to float).
	var balance string
	err = tx.QueryRowContext(ctx,
		"SELECT balance FROM accounts WHERE id = ?", txn.AccountID,
	).Scan(&balance)
	if err == sql.ErrNoRows {
		return fmt.Errorf("account not found: %s", txn.AccountID)
	}
	if err != nil {
		return fmt.Errorf("failed to read account balance: %w", err)
	}

	current, err := decimal.NewFromString(balance)
	if err != nil {
		return fmt.Errorf("failed to parse account balance: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO transactions (id, account_id, date, amount, type, description)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		txn.ID, txn.AccountID, txn.Date.Unix(), txn.Amount.String(), string(txn.Type), txn.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE accounts SET balance = ? WHERE id = ?",
		current.Add(balanceDelta).String(), txn.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account balance: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTransaction retrieves a transaction by ID. Returns (nil, nil) if not found.
func (s *SQLiteStore) GetTransaction(ctx context.Context, txnID string) (*models.Transaction, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, account_id, date, amount, type, description FROM transactions WHERE id = ?",
		txnID,
	)

	txn, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return txn, nil
}

// ListTransactionsByAccount retrieves an account's transactions ordered
// by date descending. Ties share the same second; the later insert wins,
// so a just-created transaction always lists at the head.
func (s *SQLiteStore) ListTransactionsByAccount(ctx context.Context, accountID string) ([]*models.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, account_id, date, amount, type, description
		 FROM transactions WHERE account_id = ? ORDER BY date DESC, rowid DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []*models.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return txns, nil
}

func scanTransaction(scan func(...any) error) (*models.Transaction, error) {
	txn := &models.Transaction{}
	var date int64
	var amount, typ string

	if err := scan(&txn.ID, &txn.AccountID, &date, &amount, &typ, &txn.Description); err != nil {
		return nil, err
	}

	var err error
	txn.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transaction amount: %w", err)
	}
	txn.Date = time.Unix(date, 0).UTC()
	txn.Type = models.TransactionType(typ)

	return txn, nil
}
