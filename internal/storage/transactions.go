package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"budgena/internal/common"
	"budgena/internal/model"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
)

// AddTransaction inserts a new transaction and returns the stored record.
// The store assigns the id and the created/updated timestamps; an id already
// set on the input (e.g. from a bank import) is kept for deduplication.
// Inserting an existing id fails with common.ErrDuplicateEntry.
func (s *SQLiteStore) AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (
			id, amount, category, type, date, notes, currency, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		txn.ID,
		txn.Amount,
		string(txn.Category),
		string(txn.Type),
		txn.Date,
		txn.Notes,
		txn.Currency,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return nil, fmt.Errorf("%w: transaction %s", common.ErrDuplicateEntry, txn.ID)
		}
		return nil, fmt.Errorf("failed to insert transaction %s: %w", txn.ID, err)
	}

	return &txn, nil
}

// UpdateTransaction replaces a transaction wholesale, keyed by id, and
// refreshes its updated timestamp. It deliberately has upsert semantics:
// updating an id that was never stored succeeds and creates the record,
// matching the behavior the rest of the application is built around.
func (s *SQLiteStore) UpdateTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(txn.ID, "id"); err != nil {
		return nil, err
	}
	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO transactions (
			id, amount, category, type, date, notes, currency, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount = excluded.amount,
			category = excluded.category,
			type = excluded.type,
			date = excluded.date,
			notes = excluded.notes,
			currency = excluded.currency,
			updated_at = excluded.updated_at
	`,
		txn.ID,
		txn.Amount,
		string(txn.Category),
		string(txn.Type),
		txn.Date,
		txn.Notes,
		txn.Currency,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction %s: %w", txn.ID, err)
	}

	return &txn, nil
}

// DeleteTransaction removes the transaction with the given id. Deleting an
// absent id is a no-op, not an error.
func (s *SQLiteStore) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", id, err)
	}
	return nil
}

// GetTransaction retrieves a single transaction by id. An absent id yields
// common.ErrNotFound.
func (s *SQLiteStore) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, category, type, date, notes, currency, created_at, updated_at
		FROM transactions
		WHERE id = ?
	`, id)

	txn, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions returns every stored transaction. Ordering is left to the
// caller; the aggregation layer sorts for presentation.
func (s *SQLiteStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, amount, category, type, date, notes, currency, created_at, updated_at
		FROM transactions
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var transactions []model.Transaction
	for rows.Next() {
		txn, scanErr := scanTransaction(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", scanErr)
		}
		transactions = append(transactions, *txn)
	}

	return transactions, rows.Err()
}

// scannable is satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

func scanTransaction(row scannable) (*model.Transaction, error) {
	var txn model.Transaction
	var category, txType string
	var notes sql.NullString

	err := row.Scan(
		&txn.ID,
		&txn.Amount,
		&category,
		&txType,
		&txn.Date,
		&notes,
		&txn.Currency,
		&txn.CreatedAt,
		&txn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.Category = model.CategoryID(category)
	txn.Type = model.TransactionType(txType)
	if notes.Valid {
		txn.Notes = notes.String
	}

	return &txn, nil
}
