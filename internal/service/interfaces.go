// Package service defines the contracts between the application layers.
package service

import (
	"context"

	"budgena/internal/model"
)

// Store defines the contract for the persistence layer: durable keyed
// storage for transactions plus the singleton settings record.
//
// A Store handle is constructed once at startup and passed by reference to
// whatever layer needs it; tests substitute an in-memory implementation of
// the same contract. All mutating operations are durable before they return.
type Store interface {
	// Transaction operations
	AddTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error)
	UpdateTransaction(ctx context.Context, txn model.Transaction) (*model.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(ctx context.Context, id string) (*model.Transaction, error)
	ListTransactions(ctx context.Context) ([]model.Transaction, error)

	// Settings operations
	SaveSettings(ctx context.Context, settings model.Settings) error
	LoadSettings(ctx context.Context) (*model.Settings, error)

	// Store management
	Migrate(ctx context.Context) error
	Close() error
}
