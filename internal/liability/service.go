package liability

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=liability
type Repository interface {
	CreateLiability(ctx context.Context, l *Liability) error
	GetLiability(ctx context.Context, id uuid.UUID) (*Liability, error)
	UpdateLiability(ctx context.Context, l *Liability) error
	DeleteLiability(ctx context.Context, id uuid.UUID) error
	ListLiabilities(ctx context.Context) ([]*Liability, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, l *Liability) error {
	if err := l.Validate(); err != nil {
		return err
	}

	return s.repo.CreateLiability(ctx, l)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Liability, error) {
	return s.repo.GetLiability(ctx, id)
}

func (s *Service) Update(ctx context.Context, l *Liability) error {
	if err := l.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateLiability(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteLiability(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Liability, error) {
	return s.repo.ListLiabilities(ctx)
}

// Projection projects the stored liability forward from now.
func (s *Service) Projection(ctx context.Context, id uuid.UUID, now time.Time) (*Liability, Projection, error) {
	l, err := s.repo.GetLiability(ctx, id)
	if err != nil {
		return nil, Projection{}, err
	}

	return l, Project(l.Terms(), now), nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	ls, err := s.repo.ListLiabilities(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(ls), nil
}
