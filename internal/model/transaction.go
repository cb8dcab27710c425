package model

import "time"

// TransactionType indicates whether a transaction adds to or subtracts from the balance.
type TransactionType string

const (
	// TypeIncome represents money coming in.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money going out.
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two known transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction represents a single recorded income or expense event.
//
// Amount is always a positive magnitude; the sign is carried by Type.
// CreatedAt and UpdatedAt are managed by the storage layer. The ID is
// usually assigned on insert too; bank imports pre-set it so re-imports
// of the same export are detected as duplicates.
type Transaction struct {
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
	ID        string
	Category  CategoryID
	Type      TransactionType
	Notes     string
	Currency  string
	Amount    float64
}

// Signed returns the amount with the sign implied by the transaction type.
func (t *Transaction) Signed() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}
