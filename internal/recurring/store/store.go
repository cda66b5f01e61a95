package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectColumns = `
	id, name, type, category, amount, recurrence, start_date, auto_acknowledge,
	last_generated, last_acknowledged, is_active, created_at, updated_at
`

func scanRule(s scanner) (*recurring.Rule, error) {
	var r recurring.Rule

	var typeStr string

	var recurrence []byte

	if err := s.Scan(
		&r.ID, &r.Name, &typeStr, &r.Category, &r.Amount, &recurrence, &r.StartDate, &r.AutoAcknowledge,
		&r.LastGenerated, &r.LastAcknowledged, &r.IsActive, &r.CreatedAt, &r.UpdatedAt,
	); err != nil {
		return nil, err
	}

	r.Type = transaction.Type(typeStr)

	if err := json.Unmarshal(recurrence, &r.Recurrence); err != nil {
		return nil, fmt.Errorf("decoding recurrence of rule %s: %w", r.ID, err)
	}

	return &r, nil
}

func (s *Store) CreateRule(ctx context.Context, r *recurring.Rule) error {
	recurrence, err := json.Marshal(r.Recurrence)
	if err != nil {
		return fmt.Errorf("encoding recurrence: %w", err)
	}

	query := `
		INSERT INTO recurring_transactions (name, type, category, amount, recurrence, start_date, auto_acknowledge, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_at
	`

	err = s.db.QueryRowContext(ctx, query,
		r.Name,
		r.Type,
		r.Category,
		r.Amount,
		recurrence,
		r.StartDate,
		r.AutoAcknowledge,
		r.IsActive,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating recurring rule: %w", err)
	}

	return nil
}

func (s *Store) GetRule(ctx context.Context, id uuid.UUID) (*recurring.Rule, error) {
	query := `SELECT ` + selectColumns + ` FROM recurring_transactions WHERE id = $1`

	r, err := scanRule(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, recurring.ErrNotFound
		}

		return nil, fmt.Errorf("getting recurring rule: %w", err)
	}

	return r, nil
}

func (s *Store) UpdateRule(ctx context.Context, r *recurring.Rule) error {
	recurrence, err := json.Marshal(r.Recurrence)
	if err != nil {
		return fmt.Errorf("encoding recurrence: %w", err)
	}

	query := `
		UPDATE recurring_transactions
		SET name = $1, type = $2, category = $3, amount = $4, recurrence = $5, start_date = $6,
			auto_acknowledge = $7, is_active = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`

	err = s.db.QueryRowContext(ctx, query,
		r.Name,
		r.Type,
		r.Category,
		r.Amount,
		recurrence,
		r.StartDate,
		r.AutoAcknowledge,
		r.IsActive,
		r.ID,
	).Scan(&r.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return recurring.ErrNotFound
		}

		return fmt.Errorf("updating recurring rule: %w", err)
	}

	return nil
}

func (s *Store) DeleteRule(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recurring_transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting recurring rule: %w", err)
	}

	return expectOne(res)
}

func (s *Store) ListRules(ctx context.Context, activeOnly bool) ([]*recurring.Rule, error) {
	query := `SELECT ` + selectColumns + ` FROM recurring_transactions`
	if activeOnly {
		query += ` WHERE is_active`
	}

	query += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recurring rules: %w", err)
	}
	defer rows.Close()

	var rules []*recurring.Rule

	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning recurring rule: %w", err)
		}

		rules = append(rules, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring rules: %w", err)
	}

	return rules, nil
}

func (s *Store) MarkGenerated(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE recurring_transactions SET last_generated = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("marking rule generated: %w", err)
	}

	return expectOne(res)
}

func (s *Store) MarkAcknowledged(ctx context.Context, id uuid.UUID, at time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE recurring_transactions SET last_acknowledged = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("marking rule acknowledged: %w", err)
	}

	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return recurring.ErrNotFound
	}

	return nil
}
