package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/goal"
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
	id, name, description, current_amount, target_amount, target_year, inflation_rate,
	status, category, monthly_contribution, expected_return, created_at, updated_at
`

func scanGoal(s scanner) (*goal.Goal, error) {
	var g goal.Goal

	var status string

	if err := s.Scan(
		&g.ID, &g.Name, &g.Description, &g.CurrentAmount, &g.TargetAmount, &g.TargetYear, &g.InflationRate,
		&status, &g.Category, &g.MonthlyContribution, &g.ExpectedReturn, &g.CreatedAt, &g.UpdatedAt,
	); err != nil {
		return nil, err
	}

	g.Status = goal.Status(status)

	return &g, nil
}

func (s *Store) CreateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		INSERT INTO goals (name, description, current_amount, target_amount, target_year, inflation_rate,
			status, category, monthly_contribution, expected_return, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.Name, g.Description, g.CurrentAmount, g.TargetAmount, g.TargetYear, g.InflationRate,
		g.Status, g.Category, g.MonthlyContribution, g.ExpectedReturn,
	).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating goal: %w", err)
	}

	return nil
}

func (s *Store) GetGoal(ctx context.Context, id uuid.UUID) (*goal.Goal, error) {
	g, err := scanGoal(s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM goals WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, goal.ErrNotFound
		}

		return nil, fmt.Errorf("getting goal: %w", err)
	}

	return g, nil
}

func (s *Store) UpdateGoal(ctx context.Context, g *goal.Goal) error {
	query := `
		UPDATE goals
		SET name = $1, description = $2, current_amount = $3, target_amount = $4, target_year = $5,
			inflation_rate = $6, status = $7, category = $8, monthly_contribution = $9,
			expected_return = $10, updated_at = NOW()
		WHERE id = $11
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		g.Name, g.Description, g.CurrentAmount, g.TargetAmount, g.TargetYear,
		g.InflationRate, g.Status, g.Category, g.MonthlyContribution,
		g.ExpectedReturn, g.ID,
	).Scan(&g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return goal.ErrNotFound
		}

		return fmt.Errorf("updating goal: %w", err)
	}

	return nil
}

func (s *Store) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return goal.ErrNotFound
	}

	return nil
}

func (s *Store) ListGoals(ctx context.Context) ([]*goal.Goal, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM goals ORDER BY target_year ASC, name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	var goals []*goal.Goal

	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}

		goals = append(goals, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating goals: %w", err)
	}

	return goals, nil
}
