package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
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
	id, name, type, total_amount, outstanding_amount, interest_rate, emi,
	start_date, end_date, notes, created_at, updated_at
`

func scanLiability(s scanner) (*liability.Liability, error) {
	var l liability.Liability

	var emi sql.NullFloat64

	if err := s.Scan(
		&l.ID, &l.Name, &l.Type, &l.TotalAmount, &l.OutstandingAmount, &l.InterestRate, &emi,
		&l.StartDate, &l.EndDate, &l.Notes, &l.CreatedAt, &l.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if emi.Valid {
		l.EMI = &emi.Float64
	}

	return &l, nil
}

func (s *Store) CreateLiability(ctx context.Context, l *liability.Liability) error {
	query := `
		INSERT INTO liabilities (name, type, total_amount, outstanding_amount, interest_rate, emi, start_date, end_date, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		l.Name,
		l.Type,
		l.TotalAmount,
		l.OutstandingAmount,
		l.InterestRate,
		l.EMI,
		l.StartDate,
		l.EndDate,
		l.Notes,
	).Scan(&l.ID, &l.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating liability: %w", err)
	}

	return nil
}

func (s *Store) GetLiability(ctx context.Context, id uuid.UUID) (*liability.Liability, error) {
	query := `SELECT ` + selectColumns + ` FROM liabilities WHERE id = $1`

	l, err := scanLiability(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, liability.ErrNotFound
		}

		return nil, fmt.Errorf("getting liability: %w", err)
	}

	return l, nil
}

func (s *Store) UpdateLiability(ctx context.Context, l *liability.Liability) error {
	query := `
		UPDATE liabilities
		SET name = $1, type = $2, total_amount = $3, outstanding_amount = $4, interest_rate = $5,
			emi = $6, start_date = $7, end_date = $8, notes = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		l.Name,
		l.Type,
		l.TotalAmount,
		l.OutstandingAmount,
		l.InterestRate,
		l.EMI,
		l.StartDate,
		l.EndDate,
		l.Notes,
		l.ID,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return liability.ErrNotFound
		}

		return fmt.Errorf("updating liability: %w", err)
	}

	return nil
}

func (s *Store) DeleteLiability(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM liabilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting liability: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return liability.ErrNotFound
	}

	return nil
}

func (s *Store) ListLiabilities(ctx context.Context) ([]*liability.Liability, error) {
	query := `SELECT ` + selectColumns + ` FROM liabilities ORDER BY outstanding_amount DESC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing liabilities: %w", err)
	}
	defer rows.Close()

	var ls []*liability.Liability

	for rows.Next() {
		l, err := scanLiability(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning liability: %w", err)
		}

		ls = append(ls, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating liabilities: %w", err)
	}

	return ls, nil
}
