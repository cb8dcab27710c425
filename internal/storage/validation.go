// Package storage provides the data persistence layer for the budgena application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"budgena/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidSettings    = errors.New("invalid settings")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction validates a single transaction.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("%w: transaction", ErrNilParameter)
	}
	if txn.Amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", ErrInvalidTransaction)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	if txn.Category == "" {
		return fmt.Errorf("%w: missing category", ErrInvalidTransaction)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	if txn.Currency == "" {
		return fmt.Errorf("%w: missing currency", ErrInvalidTransaction)
	}
	return nil
}

// validateSettings validates the settings record.
func validateSettings(settings *model.Settings) error {
	if settings == nil {
		return fmt.Errorf("%w: settings", ErrNilParameter)
	}
	if strings.TrimSpace(settings.Language) == "" {
		return fmt.Errorf("%w: missing language", ErrInvalidSettings)
	}
	if strings.TrimSpace(settings.CountryCode) == "" {
		return fmt.Errorf("%w: missing country code", ErrInvalidSettings)
	}
	if strings.TrimSpace(settings.CurrencyCode) == "" {
		return fmt.Errorf("%w: missing currency code", ErrInvalidSettings)
	}
	return nil
}
