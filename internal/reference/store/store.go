package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/wealthboard/internal/reference"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateCategory(ctx context.Context, c *reference.Category) error {
	query := `
		INSERT INTO categories (name, kind)
		VALUES ($1, $2)
		ON CONFLICT (name, kind) DO UPDATE SET name = EXCLUDED.name
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, c.Name, c.Kind).Scan(&c.ID); err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) ListCategories(ctx context.Context, kind *reference.Kind) ([]*reference.Category, error) {
	query := `SELECT id, name, kind FROM categories`

	var args []any

	if kind != nil {
		query += ` WHERE kind = $1`

		args = append(args, *kind)
	}

	query += ` ORDER BY kind, name`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*reference.Category

	for rows.Next() {
		var c reference.Category

		var k string

		if err := rows.Scan(&c.ID, &c.Name, &k); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Kind = reference.Kind(k)
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int) error {
	return s.delete(ctx, `DELETE FROM categories WHERE id = $1`, id)
}

func (s *Store) CreateBank(ctx context.Context, b *reference.Bank) error {
	query := `
		INSERT INTO banks (name, type, last4, balance, "primary")
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, b.Name, b.Type, b.Last4, b.Balance, b.Primary).Scan(&b.ID); err != nil {
		return fmt.Errorf("creating bank: %w", err)
	}

	return nil
}

func (s *Store) UpdateBank(ctx context.Context, b *reference.Bank) error {
	query := `
		UPDATE banks
		SET name = $1, type = $2, last4 = $3, balance = $4, "primary" = $5
		WHERE id = $6
	`

	res, err := s.db.ExecContext(ctx, query, b.Name, b.Type, b.Last4, b.Balance, b.Primary, b.ID)
	if err != nil {
		return fmt.Errorf("updating bank: %w", err)
	}

	return expectOne(res)
}

func (s *Store) ListBanks(ctx context.Context) ([]*reference.Bank, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, type, last4, balance, "primary" FROM banks ORDER BY "primary" DESC, name`)
	if err != nil {
		return nil, fmt.Errorf("listing banks: %w", err)
	}
	defer rows.Close()

	var banks []*reference.Bank

	for rows.Next() {
		var b reference.Bank
		if err := rows.Scan(&b.ID, &b.Name, &b.Type, &b.Last4, &b.Balance, &b.Primary); err != nil {
			return nil, fmt.Errorf("scanning bank: %w", err)
		}

		banks = append(banks, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating banks: %w", err)
	}

	return banks, nil
}

func (s *Store) DeleteBank(ctx context.Context, id int) error {
	return s.delete(ctx, `DELETE FROM banks WHERE id = $1`, id)
}

func (s *Store) CreateBroker(ctx context.Context, b *reference.Broker) error {
	query := `
		INSERT INTO brokers (name, status, last_sync, sync_enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if err := s.db.QueryRowContext(ctx, query, b.Name, b.Status, b.LastSync, b.SyncEnabled).Scan(&b.ID); err != nil {
		return fmt.Errorf("creating broker: %w", err)
	}

	return nil
}

func (s *Store) UpdateBroker(ctx context.Context, b *reference.Broker) error {
	query := `
		UPDATE brokers
		SET name = $1, status = $2, last_sync = $3, sync_enabled = $4
		WHERE id = $5
	`

	res, err := s.db.ExecContext(ctx, query, b.Name, b.Status, b.LastSync, b.SyncEnabled, b.ID)
	if err != nil {
		return fmt.Errorf("updating broker: %w", err)
	}

	return expectOne(res)
}

func (s *Store) ListBrokers(ctx context.Context) ([]*reference.Broker, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, status, last_sync, sync_enabled FROM brokers ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing brokers: %w", err)
	}
	defer rows.Close()

	var brokers []*reference.Broker

	for rows.Next() {
		var b reference.Broker

		var status string

		if err := rows.Scan(&b.ID, &b.Name, &status, &b.LastSync, &b.SyncEnabled); err != nil {
			return nil, fmt.Errorf("scanning broker: %w", err)
		}

		b.Status = reference.BrokerStatus(status)
		brokers = append(brokers, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating brokers: %w", err)
	}

	return brokers, nil
}

func (s *Store) DeleteBroker(ctx context.Context, id int) error {
	return s.delete(ctx, `DELETE FROM brokers WHERE id = $1`, id)
}

func (s *Store) delete(ctx context.Context, query string, id int) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting: %w", err)
	}

	return expectOne(res)
}

func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if n == 0 {
		return reference.ErrNotFound
	}

	return nil
}

