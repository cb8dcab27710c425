package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"budgena/internal/common"
	"budgena/internal/config"
	"budgena/internal/model"
	"budgena/internal/service"
	"budgena/internal/storage"
)

// initStore opens the configured database and brings the schema up to date.
func initStore(ctx context.Context) (service.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// loadWorkingSet opens the store and materializes the in-memory view most
// commands operate on. The returned cleanup closes the store.
func loadWorkingSet(ctx context.Context) (*service.WorkingSet, func(), error) {
	store, err := initStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	ws := service.NewWorkingSet(store)
	if err := ws.Load(ctx); err != nil {
		_ = store.Close()
		return nil, nil, err
	}

	return ws, func() { _ = store.Close() }, nil
}

// requireOnboarded rejects commands that need settings before onboarding ran.
func requireOnboarded(ws *service.WorkingSet) error {
	if ws.IsOnboarded() {
		return nil
	}
	return common.NewUserError("run 'budgena settings onboard' first", common.ErrNotOnboarded)
}

// currencySymbol returns the display symbol for the configured country,
// or "$" before onboarding.
func currencySymbol(ws *service.WorkingSet) string {
	if settings := ws.Settings(); settings != nil {
		return model.CurrencySymbolFor(settings.CountryCode)
	}
	return "$"
}

// parseDate accepts a YYYY-MM-DD date string; empty means today.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return date, nil
}
