package reference

import (
	"context"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=reference
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	ListCategories(ctx context.Context, kind *Kind) ([]*Category, error)
	DeleteCategory(ctx context.Context, id int) error

	CreateBank(ctx context.Context, b *Bank) error
	UpdateBank(ctx context.Context, b *Bank) error
	ListBanks(ctx context.Context) ([]*Bank, error)
	DeleteBank(ctx context.Context, id int) error

	CreateBroker(ctx context.Context, b *Broker) error
	UpdateBroker(ctx context.Context, b *Broker) error
	ListBrokers(ctx context.Context) ([]*Broker, error)
	DeleteBroker(ctx context.Context, id int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateCategory(ctx context.Context, c *Category) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return s.repo.CreateCategory(ctx, c)
}

func (s *Service) ListCategories(ctx context.Context, kind *Kind) ([]*Category, error) {
	return s.repo.ListCategories(ctx, kind)
}

func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *Service) CreateBank(ctx context.Context, b *Bank) error {
	if err := b.Validate(); err != nil {
		return err
	}

	return s.repo.CreateBank(ctx, b)
}

func (s *Service) UpdateBank(ctx context.Context, b *Bank) error {
	if err := b.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateBank(ctx, b)
}

func (s *Service) ListBanks(ctx context.Context) ([]*Bank, error) {
	return s.repo.ListBanks(ctx)
}

func (s *Service) DeleteBank(ctx context.Context, id int) error {
	return s.repo.DeleteBank(ctx, id)
}

func (s *Service) CreateBroker(ctx context.Context, b *Broker) error {
	if err := b.Validate(); err != nil {
		return err
	}

	return s.repo.CreateBroker(ctx, b)
}

func (s *Service) UpdateBroker(ctx context.Context, b *Broker) error {
	if err := b.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateBroker(ctx, b)
}

func (s *Service) ListBrokers(ctx context.Context) ([]*Broker, error) {
	return s.repo.ListBrokers(ctx)
}

func (s *Service) DeleteBroker(ctx context.Context, id int) error {
	return s.repo.DeleteBroker(ctx, id)
}
