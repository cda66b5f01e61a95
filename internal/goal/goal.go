package goal

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("goal not found")
	ErrInvalid  = errors.New("invalid goal")
)

type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in-progress"
	StatusAchieved   Status = "achieved"
)

type Goal struct {
	ID                  uuid.UUID
	Name                string
	Description         string
	CurrentAmount       float64
	TargetAmount        float64
	TargetYear          int
	InflationRate       float64 // annual, percent
	Status              Status
	Category            string
	MonthlyContribution float64
	ExpectedReturn      float64 // annual, percent
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

func (g *Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalid)
	}

	for _, v := range []float64{g.CurrentAmount, g.TargetAmount, g.MonthlyContribution} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: amounts must be finite and non-negative", ErrInvalid)
		}
	}

	switch g.Status {
	case StatusTodo, StatusInProgress, StatusAchieved:
	case "":
		g.Status = StatusTodo
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalid, g.Status)
	}

	return nil
}

// Progress is the saved share of the target, in percent.
func (g *Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}

	return g.CurrentAmount / g.TargetAmount * 100
}

// InflatedTarget is the target expressed in money of the target year.
func (g *Goal) InflatedTarget(now time.Time) float64 {
	years := g.TargetYear - now.Year()
	if years <= 0 || g.InflationRate == 0 {
		return g.TargetAmount
	}

	return g.TargetAmount * math.Pow(1+g.InflationRate/100, float64(years))
}

type Summary struct {
	TotalTarget     float64
	TotalSaved      float64
	OverallProgress float64
	Active          int
	Achieved        int
}

func Summarize(goals []*Goal) Summary {
	var s Summary

	for _, g := range goals {
		s.TotalTarget += g.TargetAmount
		s.TotalSaved += g.CurrentAmount

		if g.Status == StatusAchieved {
			s.Achieved++
		} else {
			s.Active++
		}
	}

	if s.TotalTarget > 0 {
		s.OverallProgress = s.TotalSaved / s.TotalTarget * 100
	}

	return s
}
