package matching

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound     = errors.New("mapping not found")
	ErrEmptyPattern = errors.New("pattern and category are required")
)

type Mapping struct {
	Pattern   string
	Category  string
	UpdatedAt time.Time
}

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=matching
type Repository interface {
	// FindCategory returns the category of the longest pattern contained in
	// raw, or "" when none matches.
	FindCategory(ctx context.Context, raw string) (string, error)
	UpsertMapping(ctx context.Context, pattern, category string) error
	ListMappings(ctx context.Context) ([]Mapping, error)
	DeleteMapping(ctx context.Context, pattern string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Suggest returns the learned category for a merchant name or description.
// Returns empty string if no match found.
func (s *Service) Suggest(ctx context.Context, raw string) (string, error) {
	raw = normalize(raw)
	if raw == "" {
		return "", nil
	}

	return s.repo.FindCategory(ctx, raw)
}

// Learn remembers that text containing pattern belongs to category,
// replacing any earlier category for the same pattern.
func (s *Service) Learn(ctx context.Context, pattern, category string) error {
	pattern = normalize(pattern)
	category = strings.TrimSpace(category)

	if pattern == "" || category == "" {
		return ErrEmptyPattern
	}

	return s.repo.UpsertMapping(ctx, pattern, category)
}

func (s *Service) List(ctx context.Context) ([]Mapping, error) {
	return s.repo.ListMappings(ctx)
}

func (s *Service) Forget(ctx context.Context, pattern string) error {
	return s.repo.DeleteMapping(ctx, normalize(pattern))
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
