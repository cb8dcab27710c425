package service

import (
	"context"
	"errors"
	"fmt"

	"budgena/internal/common"
	"budgena/internal/model"
	"budgena/internal/summary"
)

// WorkingSet is the caller-side in-memory mirror of the store: all
// transactions and the settings record, loaded once at startup and queried
// synchronously by the aggregation layer.
//
// Mutations go through the store first and are reflected locally only after
// the store confirms durability, so a failed write never shows up in the
// view. The set assumes a single active caller; it is not safe for
// concurrent use.
type WorkingSet struct {
	store        Store
	settings     *model.Settings
	transactions []model.Transaction
}

// NewWorkingSet wraps a store handle. Call Load before reading.
func NewWorkingSet(store Store) *WorkingSet {
	return &WorkingSet{store: store}
}

// Load materializes all transactions (most recent first) and the settings
// record from the store. A store with no settings yet leaves Settings nil;
// that absence is the onboarding gate.
func (w *WorkingSet) Load(ctx context.Context) error {
	transactions, err := w.store.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	settings, err := w.store.LoadSettings(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return fmt.Errorf("load settings: %w", err)
	}

	w.transactions = summary.SortByDateDesc(transactions)
	w.settings = settings
	return nil
}

// Transactions returns the current view, most recent first. The returned
// slice is shared; callers must not mutate it.
func (w *WorkingSet) Transactions() []model.Transaction {
	return w.transactions
}

// Settings returns the loaded settings record, or nil before onboarding.
func (w *WorkingSet) Settings() *model.Settings {
	return w.settings
}

// IsOnboarded reports whether a settings record with the onboarding flag has
// been persisted.
func (w *WorkingSet) IsOnboarded() bool {
	return w.settings != nil && w.settings.IsOnboarded
}

// Add stores a new transaction and, once durable, inserts it into the view.
func (w *WorkingSet) Add(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	stored, err := w.store.AddTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}
	w.transactions = summary.SortByDateDesc(append(w.transactions, *stored))
	return stored, nil
}

// Update replaces a transaction in the store and then in the view.
func (w *WorkingSet) Update(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	stored, err := w.store.UpdateTransaction(ctx, txn)
	if err != nil {
		return nil, err
	}

	replaced := false
	for i := range w.transactions {
		if w.transactions[i].ID == stored.ID {
			w.transactions[i] = *stored
			replaced = true
			break
		}
	}
	if !replaced {
		// Upsert semantics: an update of an unknown id created the record.
		w.transactions = append(w.transactions, *stored)
	}
	w.transactions = summary.SortByDateDesc(w.transactions)
	return stored, nil
}

// Delete removes a transaction from the store and then from the view.
func (w *WorkingSet) Delete(ctx context.Context, id string) error {
	if err := w.store.DeleteTransaction(ctx, id); err != nil {
		return err
	}
	for i := range w.transactions {
		if w.transactions[i].ID == id {
			w.transactions = append(w.transactions[:i], w.transactions[i+1:]...)
			break
		}
	}
	return nil
}

// SaveSettings persists the whole settings record and updates the view.
func (w *WorkingSet) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := w.store.SaveSettings(ctx, settings); err != nil {
		return err
	}
	w.settings = &settings
	return nil
}
