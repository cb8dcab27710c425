package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgena/internal/model"
	"budgena/internal/service"
	"budgena/internal/storage"
)

func newWorkingSet(t *testing.T) *service.WorkingSet {
	t.Helper()
	ws := service.NewWorkingSet(storage.NewMemoryStore())
	require.NoError(t, ws.Load(context.Background()))
	return ws
}

func sampleTransaction(day int, amount float64) model.Transaction {
	return model.Transaction{
		Amount:   amount,
		Type:     model.TypeExpense,
		Category: model.CategoryFood,
		Date:     time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC),
		Currency: "USD",
	}
}

func TestWorkingSetLoadEmpty(t *testing.T) {
	ws := newWorkingSet(t)

	assert.Empty(t, ws.Transactions())
	assert.Nil(t, ws.Settings())
	assert.False(t, ws.IsOnboarded())
}

func TestWorkingSetAddKeepsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	ws := newWorkingSet(t)

	_, err := ws.Add(ctx, sampleTransaction(5, 10))
	require.NoError(t, err)
	_, err = ws.Add(ctx, sampleTransaction(20, 20))
	require.NoError(t, err)
	_, err = ws.Add(ctx, sampleTransaction(12, 30))
	require.NoError(t, err)

	view := ws.Transactions()
	require.Len(t, view, 3)
	assert.Equal(t, 20, view[0].Date.Day())
	assert.Equal(t, 12, view[1].Date.Day())
	assert.Equal(t, 5, view[2].Date.Day())
}

func TestWorkingSetFailedMutationLeavesViewUntouched(t *testing.T) {
	ctx := context.Background()
	ws := newWorkingSet(t)

	_, err := ws.Add(ctx, sampleTransaction(1, 10))
	require.NoError(t, err)

	invalid := sampleTransaction(2, -5)
	_, err = ws.Add(ctx, invalid)
	require.Error(t, err)

	// The rejected record must not appear in the view.
	assert.Len(t, ws.Transactions(), 1)
}

func TestWorkingSetUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	ws := newWorkingSet(t)

	stored, err := ws.Add(ctx, sampleTransaction(10, 50))
	require.NoError(t, err)

	modified := *stored
	modified.Amount = 75
	_, err = ws.Update(ctx, modified)
	require.NoError(t, err)

	view := ws.Transactions()
	require.Len(t, view, 1)
	assert.InDelta(t, 75, view[0].Amount, 1e-9)

	require.NoError(t, ws.Delete(ctx, stored.ID))
	assert.Empty(t, ws.Transactions())
}

func TestWorkingSetUpdateOfUnknownIDCreatesRecord(t *testing.T) {
	ctx := context.Background()
	ws := newWorkingSet(t)

	txn := sampleTransaction(3, 40)
	txn.ID = "external-id"

	_, err := ws.Update(ctx, txn)
	require.NoError(t, err)

	require.Len(t, ws.Transactions(), 1)
	assert.Equal(t, "external-id", ws.Transactions()[0].ID)
}

func TestWorkingSetSettings(t *testing.T) {
	ctx := context.Background()
	ws := newWorkingSet(t)

	settings := model.Settings{
		Language:     "fr",
		CountryCode:  "FR",
		CurrencyCode: "EUR",
		IsOnboarded:  true,
	}
	require.NoError(t, ws.SaveSettings(ctx, settings))

	assert.True(t, ws.IsOnboarded())
	require.NotNil(t, ws.Settings())
	assert.Equal(t, "EUR", ws.Settings().CurrencyCode)
}

func TestWorkingSetLoadSeesPersistedState(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()

	first := service.NewWorkingSet(store)
	require.NoError(t, first.Load(ctx))
	_, err := first.Add(ctx, sampleTransaction(7, 12))
	require.NoError(t, err)
	require.NoError(t, first.SaveSettings(ctx, model.Settings{
		Language: "en", CountryCode: "US", CurrencyCode: "USD", IsOnboarded: true,
	}))

	second := service.NewWorkingSet(store)
	require.NoError(t, second.Load(ctx))
	assert.Len(t, second.Transactions(), 1)
	assert.True(t, second.IsOnboarded())
}
