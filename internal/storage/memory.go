package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"budgena/internal/common"
	"budgena/internal/model"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of the service.Store contract.
// It exists for tests and for callers that want the full application wiring
// without touching disk; semantics match SQLiteStore exactly.
type MemoryStore struct {
	transactions map[string]model.Transaction
	settings     *model.Settings
	mu           sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		transactions: make(map[string]model.Transaction),
	}
}

// AddTransaction inserts a new transaction, assigning id and timestamps.
func (m *MemoryStore) AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	if _, exists := m.transactions[txn.ID]; exists {
		return nil, fmt.Errorf("%w: transaction %s", common.ErrDuplicateEntry, txn.ID)
	}

	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.UpdatedAt = now
	m.transactions[txn.ID] = txn

	return &txn, nil
}

// UpdateTransaction replaces a transaction wholesale with upsert semantics,
// mirroring SQLiteStore.UpdateTransaction.
func (m *MemoryStore) UpdateTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(txn.ID, "id"); err != nil {
		return nil, err
	}
	if err := validateTransaction(&txn); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if txn.CreatedAt.IsZero() {
		txn.CreatedAt = now
	}
	txn.UpdatedAt = now
	m.transactions[txn.ID] = txn

	return &txn, nil
}

// DeleteTransaction removes a transaction; absent ids are a no-op.
func (m *MemoryStore) DeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.transactions, id)
	return nil
}

// GetTransaction retrieves a transaction by id.
func (m *MemoryStore) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	txn, exists := m.transactions[id]
	if !exists {
		return nil, common.ErrNotFound
	}
	return &txn, nil
}

// ListTransactions returns every stored transaction, unordered.
func (m *MemoryStore) ListTransactions(ctx context.Context) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	transactions := make([]model.Transaction, 0, len(m.transactions))
	for _, txn := range m.transactions {
		transactions = append(transactions, txn)
	}
	return transactions, nil
}

// SaveSettings upserts the singleton settings record.
func (m *MemoryStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSettings(&settings); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings = &settings
	return nil
}

// LoadSettings retrieves the singleton settings record.
func (m *MemoryStore) LoadSettings(ctx context.Context) (*model.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.settings == nil {
		return nil, common.ErrNotFound
	}
	settings := *m.settings
	return &settings, nil
}

// Migrate is a no-op; the in-memory store has no schema.
func (m *MemoryStore) Migrate(ctx context.Context) error {
	return validateContext(ctx)
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
