package liability

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("liability not found")
	ErrInvalid  = errors.New("invalid liability")
)

// Liability is a loan or other debt repaid through a fixed monthly installment.
type Liability struct {
	ID                uuid.UUID
	Name              string
	Type              string
	TotalAmount       float64
	OutstandingAmount float64
	InterestRate      float64 // annual, in percent
	EMI               *float64
	StartDate         time.Time
	EndDate           *time.Time
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

func (l *Liability) Terms() Terms {
	t := Terms{Outstanding: l.OutstandingAmount, AnnualRate: l.InterestRate}
	if l.EMI != nil {
		t.EMI = *l.EMI
	}

	return t
}

// Validate rejects records the projector cannot reason about.
func (l *Liability) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	type check struct {
		field string
		value float64
	}

	checks := []check{
		{"total amount", l.TotalAmount},
		{"outstanding amount", l.OutstandingAmount},
		{"interest rate", l.InterestRate},
	}

	if l.EMI != nil {
		checks = append(checks, check{"emi", *l.EMI})
	}

	for _, c := range checks {
		if !nonNegative(c.value) {
			return fmt.Errorf("%w: %s must be a finite, non-negative number", ErrInvalid, c.field)
		}
	}

	if l.EndDate != nil && l.EndDate.Before(l.StartDate) {
		return fmt.Errorf("%w: end date precedes start date", ErrInvalid)
	}

	return nil
}

func nonNegative(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
