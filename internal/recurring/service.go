package recurring

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	CreateRule(ctx context.Context, r *Rule) error
	GetRule(ctx context.Context, id uuid.UUID) (*Rule, error)
	UpdateRule(ctx context.Context, r *Rule) error
	DeleteRule(ctx context.Context, id uuid.UUID) error
	ListRules(ctx context.Context, activeOnly bool) ([]*Rule, error)
	MarkGenerated(ctx context.Context, id uuid.UUID, at time.Time) error
	MarkAcknowledged(ctx context.Context, id uuid.UUID, at time.Time) error
}

// Transactions is the part of the transaction service generation relies on.
type Transactions interface {
	ListPeriod(ctx context.Context, start, end time.Time, t *transaction.Type) ([]*transaction.Transaction, error)
	CreateBatch(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error)
	Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	Acknowledge(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
	txs  Transactions
}

func NewService(repo Repository, txs Transactions) *Service {
	return &Service{repo: repo, txs: txs}
}

func (s *Service) Create(ctx context.Context, r *Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}

	return s.repo.CreateRule(ctx, r)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Rule, error) {
	return s.repo.GetRule(ctx, id)
}

func (s *Service) Update(ctx context.Context, r *Rule) error {
	if err := r.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateRule(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRule(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Rule, error) {
	return s.repo.ListRules(ctx, false)
}

// Generate records this month's outstanding instances of every active rule.
func (s *Service) Generate(ctx context.Context, now time.Time) ([]*transaction.Transaction, error) {
	rules, err := s.repo.ListRules(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("listing rules: %w", err)
	}

	if len(rules) == 0 {
		return nil, nil
	}

	existing, err := s.txs.ListPeriod(ctx, transaction.MonthStart(now), transaction.MonthEnd(now), nil)
	if err != nil {
		return nil, fmt.Errorf("listing month transactions: %w", err)
	}

	params := Materialize(rules, existing, now)
	if len(params) == 0 {
		return nil, nil
	}

	created, err := s.txs.CreateBatch(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("recording generated transactions: %w", err)
	}

	for _, tx := range created {
		if err := s.repo.MarkGenerated(ctx, *tx.RecurringID, now); err != nil {
			return nil, fmt.Errorf("marking rule %s generated: %w", tx.RecurringID, err)
		}
	}

	return created, nil
}

// Acknowledge confirms a generated transaction and stamps its rule.
func (s *Service) Acknowledge(ctx context.Context, txID uuid.UUID, now time.Time) error {
	tx, err := s.txs.Get(ctx, txID)
	if err != nil {
		return err
	}

	if tx.RecurringID == nil {
		return ErrNotRecurring
	}

	if err := s.txs.Acknowledge(ctx, txID); err != nil {
		return err
	}

	return s.repo.MarkAcknowledged(ctx, *tx.RecurringID, now)
}
