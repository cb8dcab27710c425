package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"budgena/internal/common"
	"budgena/internal/model"
)

// settingsKey is the fixed sentinel id of the singleton settings row.
const settingsKey = "app-settings"

// SaveSettings upserts the single settings record. The whole record is
// replaced; there are no partial-field updates at the storage boundary.
func (s *SQLiteStore) SaveSettings(ctx context.Context, settings model.Settings) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateSettings(&settings); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (
			id, language, country_code, currency_code, pin_enabled, biometric_enabled, is_onboarded
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			language = excluded.language,
			country_code = excluded.country_code,
			currency_code = excluded.currency_code,
			pin_enabled = excluded.pin_enabled,
			biometric_enabled = excluded.biometric_enabled,
			is_onboarded = excluded.is_onboarded
	`,
		settingsKey,
		settings.Language,
		settings.CountryCode,
		settings.CurrencyCode,
		settings.PINEnabled,
		settings.BiometricEnabled,
		settings.IsOnboarded,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

// LoadSettings retrieves the singleton settings record. Before any settings
// have been saved it yields common.ErrNotFound, which the front-end treats
// as the onboarding gate signal.
func (s *SQLiteStore) LoadSettings(ctx context.Context) (*model.Settings, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var settings model.Settings
	err := s.db.QueryRowContext(ctx, `
		SELECT language, country_code, currency_code, pin_enabled, biometric_enabled, is_onboarded
		FROM settings
		WHERE id = ?
	`, settingsKey).Scan(
		&settings.Language,
		&settings.CountryCode,
		&settings.CurrencyCode,
		&settings.PINEnabled,
		&settings.BiometricEnabled,
		&settings.IsOnboarded,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &settings, nil
}
