package recurring

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

var (
	ErrNotFound     = errors.New("recurring rule not found")
	ErrInvalid      = errors.New("invalid recurring rule")
	ErrNotRecurring = errors.New("transaction was not generated by a recurring rule")
)

type Frequency string

const (
	Monthly Frequency = "monthly"
	Weekly  Frequency = "weekly"
	Custom  Frequency = "custom"
)

// Recurrence is stored as JSON alongside the rule.
type Recurrence struct {
	Type         Frequency `json:"type"`
	DayOfMonth   int       `json:"dayOfMonth,omitempty"`   // 1-31, monthly only
	DayOfWeek    *int      `json:"dayOfWeek,omitempty"`    // 0 (Sunday) to 6, weekly only
	IntervalDays int       `json:"intervalDays,omitempty"` // custom only
}

type Rule struct {
	ID               uuid.UUID
	Name             string
	Type             transaction.Type
	Category         string
	Amount           float64
	Recurrence       Recurrence
	StartDate        time.Time
	AutoAcknowledge  bool
	LastGenerated    *time.Time
	LastAcknowledged *time.Time
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

func (r *Rule) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if r.Type != transaction.TypeIncome && r.Type != transaction.TypeExpense {
		return fmt.Errorf("%w: type must be income or expense", ErrInvalid)
	}

	if r.Category == "" {
		return fmt.Errorf("%w: category is required", ErrInvalid)
	}

	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount < 0 {
		return fmt.Errorf("%w: amount must be a finite, non-negative number", ErrInvalid)
	}

	switch r.Recurrence.Type {
	case Monthly:
		if r.Recurrence.DayOfMonth < 1 || r.Recurrence.DayOfMonth > 31 {
			return fmt.Errorf("%w: day of month must be between 1 and 31", ErrInvalid)
		}
	case Weekly:
		if d := r.Recurrence.DayOfWeek; d == nil || *d < 0 || *d > 6 {
			return fmt.Errorf("%w: day of week must be between 0 and 6", ErrInvalid)
		}
	case Custom:
		if r.Recurrence.IntervalDays < 1 {
			return fmt.Errorf("%w: interval must be at least one day", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown recurrence %q", ErrInvalid, r.Recurrence.Type)
	}

	return nil
}
