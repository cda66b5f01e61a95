package goal

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=goal
type Repository interface {
	CreateGoal(ctx context.Context, g *Goal) error
	GetGoal(ctx context.Context, id uuid.UUID) (*Goal, error)
	UpdateGoal(ctx context.Context, g *Goal) error
	DeleteGoal(ctx context.Context, id uuid.UUID) error
	ListGoals(ctx context.Context) ([]*Goal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, g *Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}

	return s.repo.CreateGoal(ctx, g)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Goal, error) {
	return s.repo.GetGoal(ctx, id)
}

func (s *Service) Update(ctx context.Context, g *Goal) error {
	if err := g.Validate(); err != nil {
		return err
	}

	return s.repo.UpdateGoal(ctx, g)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteGoal(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Goal, error) {
	return s.repo.ListGoals(ctx)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	goals, err := s.repo.ListGoals(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summarize(goals), nil
}
