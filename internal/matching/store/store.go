package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/wealthboard/internal/matching"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) FindCategory(ctx context.Context, raw string) (string, error) {
	query := `
		SELECT category
		FROM category_mappings
		WHERE $1 ILIKE '%' || raw_pattern || '%'
		ORDER BY LENGTH(raw_pattern) DESC, updated_at DESC
		LIMIT 1
	`

	var category string

	err := s.db.QueryRowContext(ctx, query, raw).Scan(&category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}

		return "", fmt.Errorf("finding category: %w", err)
	}

	return category, nil
}

func (s *Store) UpsertMapping(ctx context.Context, pattern, category string) error {
	query := `
		INSERT INTO category_mappings (raw_pattern, category, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (raw_pattern) DO UPDATE
		SET category = EXCLUDED.category, updated_at = NOW()
	`

	if _, err := s.db.ExecContext(ctx, query, pattern, category); err != nil {
		return fmt.Errorf("saving mapping: %w", err)
	}

	return nil
}

func (s *Store) ListMappings(ctx context.Context) ([]matching.Mapping, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT raw_pattern, category, updated_at FROM category_mappings ORDER BY raw_pattern`)
	if err != nil {
		return nil, fmt.Errorf("listing mappings: %w", err)
	}
	defer rows.Close()

	var mappings []matching.Mapping

	for rows.Next() {
		var m matching.Mapping
		if err := rows.Scan(&m.Pattern, &m.Category, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning mapping: %w", err)
		}

		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating mappings: %w", err)
	}

	return mappings, nil
}

func (s *Store) DeleteMapping(ctx context.Context, pattern string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM category_mappings WHERE raw_pattern = $1`, pattern)
	if err != nil {
		return fmt.Errorf("deleting mapping: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return matching.ErrNotFound
	}

	return nil
}
