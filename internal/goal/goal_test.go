package goal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wealthboard/internal/goal"
)

func TestGoal_Progress(t *testing.T) {
	assert.InDelta(t, 25.0, (&goal.Goal{CurrentAmount: 250000, TargetAmount: 1000000}).Progress(), 1e-9)
	assert.Zero(t, (&goal.Goal{CurrentAmount: 10}).Progress())
}

func TestGoal_InflatedTarget(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	g := &goal.Goal{TargetAmount: 100000, TargetYear: 2026, InflationRate: 10}
	assert.InDelta(t, 121000.0, g.InflatedTarget(now), 1e-6)

	past := &goal.Goal{TargetAmount: 100000, TargetYear: 2020, InflationRate: 10}
	assert.InDelta(t, 100000.0, past.InflatedTarget(now), 1e-9)
}

func TestGoal_Validate(t *testing.T) {
	g := &goal.Goal{Name: "House", TargetAmount: 10}
	require.NoError(t, g.Validate())
	assert.Equal(t, goal.StatusTodo, g.Status)

	assert.ErrorIs(t, (&goal.Goal{}).Validate(), goal.ErrInvalid)
	assert.ErrorIs(t, (&goal.Goal{Name: "Car", TargetAmount: -1}).Validate(), goal.ErrInvalid)
	assert.ErrorIs(t, (&goal.Goal{Name: "Car", Status: "abandoned"}).Validate(), goal.ErrInvalid)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := goal.NewMockRepository(ctrl)
	svc := goal.NewService(repo)

	repo.EXPECT().ListGoals(gomock.Any()).Return([]*goal.Goal{
		{TargetAmount: 1000, CurrentAmount: 1000, Status: goal.StatusAchieved},
		{TargetAmount: 3000, CurrentAmount: 1000, Status: goal.StatusInProgress},
	}, nil)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 4000.0, got.TotalTarget, 1e-9)
	assert.InDelta(t, 2000.0, got.TotalSaved, 1e-9)
	assert.InDelta(t, 50.0, got.OverallProgress, 1e-9)
	assert.Equal(t, 1, got.Active)
	assert.Equal(t, 1, got.Achieved)
}

func TestService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := goal.NewService(goal.NewMockRepository(ctrl))
	assert.ErrorIs(t, svc.Create(context.Background(), &goal.Goal{}), goal.ErrInvalid)
}
