package summary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"budgena/internal/model"
)

func txn(id string, txType model.TransactionType, category model.CategoryID, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		ID:       id,
		Type:     txType,
		Category: category,
		Amount:   amount,
		Date:     date,
		Currency: "USD",
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		transactions []model.Transaction
		want         Totals
	}{
		{
			name:         "empty input yields zeros",
			transactions: nil,
			want:         Totals{},
		},
		{
			name: "income and expense",
			transactions: []model.Transaction{
				txn("1", model.TypeIncome, model.CategorySalary, 100, date(2024, 3, 1)),
				txn("2", model.TypeExpense, model.CategoryFood, 40, date(2024, 3, 2)),
			},
			want: Totals{Income: 100, Expenses: 40, Balance: 60},
		},
		{
			name: "expenses only give negative balance",
			transactions: []model.Transaction{
				txn("1", model.TypeExpense, model.CategoryRent, 700, date(2024, 3, 1)),
				txn("2", model.TypeExpense, model.CategoryFood, 50.50, date(2024, 3, 2)),
			},
			want: Totals{Income: 0, Expenses: 750.50, Balance: -750.50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.transactions)
			assert.InDelta(t, tt.want.Income, got.Income, 1e-9)
			assert.InDelta(t, tt.want.Expenses, got.Expenses, 1e-9)
			assert.InDelta(t, tt.want.Balance, got.Balance, 1e-9)
		})
	}
}

func TestSortByDateDesc(t *testing.T) {
	input := []model.Transaction{
		txn("old", model.TypeExpense, model.CategoryFood, 10, date(2024, 1, 5)),
		txn("new", model.TypeExpense, model.CategoryFood, 20, date(2024, 3, 5)),
		txn("tie-a", model.TypeExpense, model.CategoryFood, 30, date(2024, 2, 5)),
		txn("tie-b", model.TypeExpense, model.CategoryFood, 40, date(2024, 2, 5)),
	}

	sorted := SortByDateDesc(input)

	require.Len(t, sorted, 4)
	assert.Equal(t, "new", sorted[0].ID)
	// Stable: records sharing a date keep their original relative order.
	assert.Equal(t, "tie-a", sorted[1].ID)
	assert.Equal(t, "tie-b", sorted[2].ID)
	assert.Equal(t, "old", sorted[3].ID)

	// Input untouched.
	assert.Equal(t, "old", input[0].ID)
}

func TestFilterByPeriod(t *testing.T) {
	tests := []struct {
		name      string
		period    Period
		reference time.Time
		dates     []time.Time
		wantKept  int
	}{
		{
			name:      "current month keeps same month and year",
			period:    PeriodCurrentMonth,
			reference: date(2024, 3, 15),
			dates:     []time.Time{date(2024, 3, 1), date(2024, 2, 28)},
			wantKept:  1,
		},
		{
			name:      "current month excludes same month of another year",
			period:    PeriodCurrentMonth,
			reference: date(2024, 3, 15),
			dates:     []time.Time{date(2023, 3, 10)},
			wantKept:  0,
		},
		{
			name:      "previous month rolls over year boundary",
			period:    PeriodPreviousMonth,
			reference: date(2024, 1, 10),
			dates:     []time.Time{date(2023, 12, 20), date(2024, 1, 5)},
			wantKept:  1,
		},
		{
			name:      "previous month within a year",
			period:    PeriodPreviousMonth,
			reference: date(2024, 6, 2),
			dates:     []time.Time{date(2024, 5, 31), date(2024, 6, 1), date(2024, 4, 30)},
			wantKept:  1,
		},
		{
			name:      "all is the identity",
			period:    PeriodAll,
			reference: date(2024, 3, 15),
			dates:     []time.Time{date(2020, 1, 1), date(2024, 3, 15), date(2030, 12, 31)},
			wantKept:  3,
		},
		{
			name:      "empty input",
			period:    PeriodCurrentMonth,
			reference: date(2024, 3, 15),
			dates:     nil,
			wantKept:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transactions := make([]model.Transaction, len(tt.dates))
			for i, d := range tt.dates {
				transactions[i] = txn(string(rune('a'+i)), model.TypeExpense, model.CategoryFood, 10, d)
			}

			got := FilterByPeriod(transactions, tt.period, tt.reference)
			assert.Len(t, got, tt.wantKept)
		})
	}
}

func TestFilterByPeriodKeepsExpectedRecord(t *testing.T) {
	kept := txn("dec", model.TypeExpense, model.CategoryFood, 10, date(2023, 12, 20))
	dropped := txn("jan", model.TypeExpense, model.CategoryFood, 10, date(2024, 1, 5))

	got := FilterByPeriod([]model.Transaction{kept, dropped}, PeriodPreviousMonth, date(2024, 1, 10))

	require.Len(t, got, 1)
	assert.Equal(t, "dec", got[0].ID)
}

func TestCategoryBreakdown(t *testing.T) {
	transactions := []model.Transaction{
		txn("1", model.TypeExpense, model.CategoryFood, 30, date(2024, 3, 1)),
		txn("2", model.TypeExpense, model.CategoryFood, 30, date(2024, 3, 2)),
		txn("3", model.TypeExpense, model.CategoryRent, 30, date(2024, 3, 3)),
		// Income must not appear in an expense breakdown.
		txn("4", model.TypeIncome, model.CategorySalary, 1000, date(2024, 3, 4)),
	}

	breakdown := CategoryBreakdown(transactions)

	assert.Len(t, breakdown, 2)
	assert.InDelta(t, 60, breakdown[model.CategoryFood], 1e-9)
	assert.InDelta(t, 30, breakdown[model.CategoryRent], 1e-9)
	assert.NotContains(t, breakdown, model.CategorySalary)
}

func TestTopCategories(t *testing.T) {
	transactions := []model.Transaction{
		txn("1", model.TypeExpense, model.CategoryFood, 60, date(2024, 3, 1)),
		txn("2", model.TypeExpense, model.CategoryRent, 30, date(2024, 3, 2)),
		txn("3", model.TypeExpense, model.CategoryTransport, 10, date(2024, 3, 3)),
	}

	top := TopCategories(transactions, 2)

	require.Len(t, top, 2)
	assert.Equal(t, model.CategoryFood, top[0].Category)
	assert.InDelta(t, 60, top[0].Amount, 1e-9)
	assert.InDelta(t, 60, top[0].Percentage, 1e-9)
	assert.Equal(t, model.CategoryRent, top[1].Category)
	assert.InDelta(t, 30, top[1].Amount, 1e-9)
	assert.InDelta(t, 30, top[1].Percentage, 1e-9)
}

func TestTopCategoriesEdgeCases(t *testing.T) {
	t.Run("n larger than category count", func(t *testing.T) {
		transactions := []model.Transaction{
			txn("1", model.TypeExpense, model.CategoryFood, 10, date(2024, 3, 1)),
		}
		top := TopCategories(transactions, 5)
		assert.Len(t, top, 1)
	})

	t.Run("n of zero", func(t *testing.T) {
		transactions := []model.Transaction{
			txn("1", model.TypeExpense, model.CategoryFood, 10, date(2024, 3, 1)),
		}
		assert.Empty(t, TopCategories(transactions, 0))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, TopCategories(nil, 3))
	})

	t.Run("ties order by category id ascending", func(t *testing.T) {
		transactions := []model.Transaction{
			txn("1", model.TypeExpense, model.CategoryRent, 50, date(2024, 3, 1)),
			txn("2", model.TypeExpense, model.CategoryFood, 50, date(2024, 3, 2)),
		}
		top := TopCategories(transactions, 2)
		require.Len(t, top, 2)
		assert.Equal(t, model.CategoryFood, top[0].Category)
		assert.Equal(t, model.CategoryRent, top[1].Category)
	})

	t.Run("zero total expenses never yields NaN percentages", func(t *testing.T) {
		transactions := []model.Transaction{
			txn("1", model.TypeIncome, model.CategorySalary, 100, date(2024, 3, 1)),
		}
		for _, entry := range TopCategories(transactions, 3) {
			assert.Equal(t, 0.0, entry.Percentage)
		}
	})
}

func TestParsePeriod(t *testing.T) {
	for _, valid := range []string{"month", "last-month", "all"} {
		p, err := ParsePeriod(valid)
		require.NoError(t, err)
		assert.Equal(t, Period(valid), p)
	}

	_, err := ParsePeriod("fortnight")
	assert.Error(t, err)
}
