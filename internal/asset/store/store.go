package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/asset"
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
	id, name, type, current_value, purchase_value, purchase_date, location, notes, created_at, updated_at
`

func scanAsset(s scanner) (*asset.Asset, error) {
	var a asset.Asset

	if err := s.Scan(
		&a.ID, &a.Name, &a.Type, &a.CurrentValue, &a.PurchaseValue, &a.PurchaseDate,
		&a.Location, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Store) CreateAsset(ctx context.Context, a *asset.Asset) error {
	query := `
		INSERT INTO assets (name, type, current_value, purchase_value, purchase_date, location, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Name, a.Type, a.CurrentValue, a.PurchaseValue, a.PurchaseDate, a.Location, a.Notes,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}

	return nil
}

func (s *Store) GetAsset(ctx context.Context, id uuid.UUID) (*asset.Asset, error) {
	a, err := scanAsset(s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM assets WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, asset.ErrNotFound
		}

		return nil, fmt.Errorf("getting asset: %w", err)
	}

	return a, nil
}

func (s *Store) UpdateAsset(ctx context.Context, a *asset.Asset) error {
	query := `
		UPDATE assets
		SET name = $1, type = $2, current_value = $3, purchase_value = $4, purchase_date = $5,
			location = $6, notes = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		a.Name, a.Type, a.CurrentValue, a.PurchaseValue, a.PurchaseDate, a.Location, a.Notes, a.ID,
	).Scan(&a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return asset.ErrNotFound
		}

		return fmt.Errorf("updating asset: %w", err)
	}

	return nil
}

func (s *Store) DeleteAsset(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return asset.ErrNotFound
	}

	return nil
}

func (s *Store) ListAssets(ctx context.Context) ([]*asset.Asset, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM assets ORDER BY current_value DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []*asset.Asset

	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}

		assets = append(assets, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assets: %w", err)
	}

	return assets, nil
}
