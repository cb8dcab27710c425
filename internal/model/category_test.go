package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryByID(t *testing.T) {
	tests := []struct {
		name   string
		id     CategoryID
		wantID CategoryID
	}{
		{name: "known category", id: CategoryFood, wantID: CategoryFood},
		{name: "last catalog entry", id: CategoryOther, wantID: CategoryOther},
		{name: "unknown id falls back to other", id: CategoryID("crypto"), wantID: CategoryOther},
		{name: "empty id falls back to other", id: CategoryID(""), wantID: CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategoryByID(tt.id)
			assert.Equal(t, tt.wantID, got.ID)
			assert.NotEmpty(t, got.Name)
			assert.NotEmpty(t, got.Icon)
		})
	}
}

func TestKnownCategory(t *testing.T) {
	for _, cat := range Categories {
		assert.True(t, KnownCategory(cat.ID), "catalog entry %s should be known", cat.ID)
	}
	assert.False(t, KnownCategory("groceries"))
}

func TestCountryByCode(t *testing.T) {
	us, ok := CountryByCode("US")
	assert.True(t, ok)
	assert.Equal(t, "USD", us.Currency)

	_, ok = CountryByCode("ZZ")
	assert.False(t, ok)

	assert.Equal(t, "€", CurrencySymbolFor("FR"))
	assert.Equal(t, "$", CurrencySymbolFor("ZZ"))
}

func TestTransactionSigned(t *testing.T) {
	income := Transaction{Type: TypeIncome, Amount: 100}
	expense := Transaction{Type: TypeExpense, Amount: 40}

	assert.Equal(t, 100.0, income.Signed())
	assert.Equal(t, -40.0, expense.Signed())
}

func TestTransactionTypeValid(t *testing.T) {
	assert.True(t, TypeIncome.Valid())
	assert.True(t, TypeExpense.Valid())
	assert.False(t, TransactionType("transfer").Valid())
	assert.False(t, TransactionType("").Valid())
}
