package report

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=report
type Transactions interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
	ListPeriod(ctx context.Context, start, end time.Time, t *transaction.Type) ([]*transaction.Transaction, error)
}

// Generator materializes due recurring transactions.
type Generator interface {
	Generate(ctx context.Context, now time.Time) ([]*transaction.Transaction, error)
}

type Service struct {
	txs            Transactions
	recurring      Generator
	openingBalance float64
}

func NewService(txs Transactions, recurring Generator, openingBalance float64) *Service {
	return &Service{txs: txs, recurring: recurring, openingBalance: openingBalance}
}

// Dashboard generates the current month's recurring transactions before
// summarizing, so the figures include them.
func (s *Service) Dashboard(ctx context.Context, now time.Time) (Dashboard, error) {
	if s.recurring != nil {
		if _, err := s.recurring.Generate(ctx, now); err != nil {
			return Dashboard{}, fmt.Errorf("generating recurring transactions: %w", err)
		}
	}

	txs, err := s.txs.List(ctx, transaction.ListFilter{Newest: true})
	if err != nil {
		return Dashboard{}, fmt.Errorf("listing transactions: %w", err)
	}

	return BuildDashboard(txs, s.openingBalance), nil
}

func (s *Service) Monthly(ctx context.Context, month time.Time) (Monthly, error) {
	start := transaction.MonthStart(month)
	prev := start.AddDate(0, -1, 0)

	current, err := s.txs.ListPeriod(ctx, start, transaction.MonthEnd(start), nil)
	if err != nil {
		return Monthly{}, fmt.Errorf("listing current month: %w", err)
	}

	previous, err := s.txs.ListPeriod(ctx, prev, transaction.MonthEnd(prev), nil)
	if err != nil {
		return Monthly{}, fmt.Errorf("listing previous month: %w", err)
	}

	return BuildMonthly(start, current, previous), nil
}
