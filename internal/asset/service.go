package asset

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=asset
type Repository interface {
	CreateAsset(ctx context.Context, a *Asset) error
	GetAsset(ctx context.Context, id uuid.UUID) (*Asset, error)
	UpdateAsset(ctx context.Context, a *Asset) error
	DeleteAsset(ctx context.Context, id uuid.UUID) error
	ListAssets(ctx context.Context) ([]*Asset, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, a *Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}

	return s.repo.CreateAsset(ctx, a)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Asset, error) {
	return s.repo.GetAsset(ctx, id)
}

func (s *Service) Update(ctx context.Context, a *Asset) error {
	if err := a.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateAsset(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAsset(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Asset, error) {
	return s.repo.ListAssets(ctx)
}

func (s *Service) Projection(ctx context.Context, id uuid.UUID, years int, now time.Time) (*Asset, []YearValue, error) {
	a, err := s.repo.GetAsset(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return a, Project(a, years, now), nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	assets, err := s.repo.ListAssets(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(assets), nil
}
