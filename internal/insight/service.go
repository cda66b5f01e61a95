package insight

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=insight
type Transactions interface {
	ListPeriod(ctx context.Context, start, end time.Time, t *transaction.Type) ([]*transaction.Transaction, error)
}

type Service struct {
	txs           Transactions
	historyMonths int
}

func NewService(txs Transactions, historyMonths int) *Service {
	if historyMonths < 1 {
		historyMonths = DefaultHistoryMonths
	}

	return &Service{txs: txs, historyMonths: historyMonths}
}

// ExpenseSuggestions compares now's month of expenses against the months before it.
func (s *Service) ExpenseSuggestions(ctx context.Context, now time.Time) ([]Suggestion, error) {
	expense := transaction.TypeExpense
	monthStart := transaction.MonthStart(now)

	current, err := s.txs.ListPeriod(ctx, monthStart, transaction.MonthEnd(now), &expense)
	if err != nil {
		return nil, fmt.Errorf("listing current expenses: %w", err)
	}

	historyStart := monthStart.AddDate(0, -s.historyMonths, 0)

	historical, err := s.txs.ListPeriod(ctx, historyStart, monthStart.AddDate(0, 0, -1), &expense)
	if err != nil {
		return nil, fmt.Errorf("listing historical expenses: %w", err)
	}

	return GenerateOver(current, historical, s.historyMonths), nil
}
