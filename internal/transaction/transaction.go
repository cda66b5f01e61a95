package transaction

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("transaction not found")
	ErrInvalidAmount   = errors.New("amount must be a finite, non-negative number")
	ErrInvalidType     = errors.New("type must be one of income, expense or investment")
	ErrMissingCategory = errors.New("category is required")
)

// Type represents the direction of a transaction.
type Type string

const (
	TypeIncome     Type = "income"
	TypeExpense    Type = "expense"
	TypeInvestment Type = "investment"
)

func (t Type) Valid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeInvestment:
		return true
	}

	return false
}

// Transaction represents a single recorded money movement.
type Transaction struct {
	ID           uuid.UUID
	Date         time.Time
	Type         Type
	Category     string
	Amount       float64
	Description  string
	IsRecurring  bool
	RecurringID  *uuid.UUID // Rule that generated this transaction, if any
	Acknowledged bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func validate(t Type, category string, amount float64) error {
	if !t.Valid() {
		return ErrInvalidType
	}

	if category == "" {
		return ErrMissingCategory
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return ErrInvalidAmount
	}

	return nil
}

// MonthStart returns midnight on the first day of t's month, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthEnd returns the last day of t's month at midnight, in t's location.
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// SameMonth reports whether a and b fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
