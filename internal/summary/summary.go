// Package summary computes derived read-only statistics over a transaction
// collection: totals, time-window filtering, and category rankings.
//
// Every function is pure: deterministic for identical input, never mutates
// its argument, and returns well-defined zero or empty results for an empty
// collection.
package summary

import (
	"sort"
	"time"

	"budgena/internal/model"
)

// Totals holds the aggregate income, expenses and balance of a collection.
type Totals struct {
	Income   float64
	Expenses float64
	Balance  float64
}

// CategoryTotal is one entry of a ranked expense breakdown.
type CategoryTotal struct {
	Category   model.CategoryID
	Amount     float64
	Percentage float64
}

// SortByDateDesc returns a new slice sorted by date descending, most recent
// first. The sort is stable: records sharing a date keep their relative order.
func SortByDateDesc(transactions []model.Transaction) []model.Transaction {
	sorted := make([]model.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}

// ComputeTotals sums income and expense amounts; balance is income minus
// expenses. An empty collection yields all-zero totals.
func ComputeTotals(transactions []model.Transaction) Totals {
	var totals Totals
	for _, txn := range transactions {
		switch txn.Type {
		case model.TypeIncome:
			totals.Income += txn.Amount
		case model.TypeExpense:
			totals.Expenses += txn.Amount
		}
	}
	totals.Balance = totals.Income - totals.Expenses
	return totals
}

// FilterByPeriod keeps the transactions whose date falls in the named period
// relative to the reference date. PeriodAll is the identity filter.
func FilterByPeriod(transactions []model.Transaction, period Period, reference time.Time) []model.Transaction {
	if period == PeriodAll {
		result := make([]model.Transaction, len(transactions))
		copy(result, transactions)
		return result
	}

	year, month := reference.Year(), reference.Month()
	if period == PeriodPreviousMonth {
		// Roll back one calendar month; December of the previous year
		// precedes January.
		if month == time.January {
			year, month = year-1, time.December
		} else {
			month--
		}
	}

	result := make([]model.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Date.Year() == year && txn.Date.Month() == month {
			result = append(result, txn)
		}
	}
	return result
}

// CategoryBreakdown sums expense amounts per category. Income records are
// ignored; the result maps category id to the summed amount.
func CategoryBreakdown(transactions []model.Transaction) map[model.CategoryID]float64 {
	breakdown := make(map[model.CategoryID]float64)
	for _, txn := range transactions {
		if txn.Type != model.TypeExpense {
			continue
		}
		breakdown[txn.Category] += txn.Amount
	}
	return breakdown
}

// TopCategories ranks expense categories by summed amount descending and
// returns the top n, each with its share of total expenses as a percentage.
// Equal sums are ordered by category id ascending so the ranking is
// deterministic. When total expenses are zero every percentage is zero.
func TopCategories(transactions []model.Transaction, n int) []CategoryTotal {
	if n <= 0 {
		return []CategoryTotal{}
	}

	breakdown := CategoryBreakdown(transactions)
	totalExpenses := 0.0
	for _, amount := range breakdown {
		totalExpenses += amount
	}

	ranked := make([]CategoryTotal, 0, len(breakdown))
	for category, amount := range breakdown {
		entry := CategoryTotal{Category: category, Amount: amount}
		if totalExpenses > 0 {
			entry.Percentage = 100 * amount / totalExpenses
		}
		ranked = append(ranked, entry)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Amount != ranked[j].Amount {
			return ranked[i].Amount > ranked[j].Amount
		}
		return ranked[i].Category < ranked[j].Category
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
