package recurring_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

var now = time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthlyRule(name string, dom int) *recurring.Rule {
	return &recurring.Rule{
		ID:         uuid.New(),
		Name:       name,
		Type:       transaction.TypeExpense,
		Category:   "Housing",
		Amount:     1200,
		Recurrence: recurring.Recurrence{Type: recurring.Monthly, DayOfMonth: dom},
		StartDate:  day(2023, 1, 1),
		IsActive:   true,
	}
}

func TestTargetDate(t *testing.T) {
	type testCase struct {
		name string
		rule *recurring.Rule
		want time.Time
	}

	tests := []testCase{
		{
			name: "MonthlyConfiguredDay",
			rule: monthlyRule("Rent", 5),
			want: day(2024, 2, 5),
		},
		{
			name: "MonthlyClampedToMonthEnd",
			rule: monthlyRule("Rent", 31),
			want: day(2024, 2, 29),
		},
		{
			name: "MonthlyWithoutDayFallsBackToToday",
			rule: monthlyRule("Rent", 0),
			want: day(2024, 2, 15),
		},
		{
			name: "WeeklyFirstMatchingWeekday",
			rule: &recurring.Rule{Recurrence: recurring.Recurrence{Type: recurring.Weekly, DayOfWeek: new(int(time.Monday))}},
			want: day(2024, 2, 5),
		},
		{
			name: "WeeklyOnFirstOfMonth",
			rule: &recurring.Rule{Recurrence: recurring.Recurrence{Type: recurring.Weekly, DayOfWeek: new(int(time.Thursday))}},
			want: day(2024, 2, 1),
		},
		{
			name: "CustomCadenceFromStart",
			rule: &recurring.Rule{
				StartDate:  day(2024, 1, 25),
				Recurrence: recurring.Recurrence{Type: recurring.Custom, IntervalDays: 10},
			},
			want: day(2024, 2, 4),
		},
		{
			name: "CustomStartingThisMonth",
			rule: &recurring.Rule{
				StartDate:  day(2024, 2, 20),
				Recurrence: recurring.Recurrence{Type: recurring.Custom, IntervalDays: 30},
			},
			want: day(2024, 2, 20),
		},
		{
			name: "CustomSkippingMonthFallsBackToToday",
			rule: &recurring.Rule{
				StartDate:  day(2024, 1, 10),
				Recurrence: recurring.Recurrence{Type: recurring.Custom, IntervalDays: 60},
			},
			want: day(2024, 2, 15),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recurring.TargetDate(tt.rule, now))
		})
	}
}

func TestMaterialize(t *testing.T) {
	rent := monthlyRule("Rent", 1)
	rent.AutoAcknowledge = true

	salary := monthlyRule("Salary", 28)
	salary.Type = transaction.TypeIncome
	salary.Category = "Salary"

	inactive := monthlyRule("Old Gym", 3)
	inactive.IsActive = false

	future := monthlyRule("Insurance", 10)
	future.StartDate = day(2024, 3, 1)

	startsLater := monthlyRule("Streaming", 25)
	startsLater.StartDate = day(2024, 2, 20)

	got := recurring.Materialize(
		[]*recurring.Rule{rent, salary, inactive, future, startsLater},
		nil,
		now,
	)
	require.Len(t, got, 3)

	assert.Equal(t, "Rent (Recurring)", got[0].Description)
	assert.Equal(t, day(2024, 2, 1), got[0].Date)
	assert.True(t, got[0].Acknowledged)
	assert.True(t, got[0].IsRecurring)
	assert.Equal(t, rent.ID, *got[0].RecurringID)
	assert.Equal(t, "Housing", got[0].Category)
	assert.InDelta(t, 1200.0, got[0].Amount, 1e-9)

	assert.Equal(t, transaction.TypeIncome, got[1].Type)
	assert.False(t, got[1].Acknowledged)

	assert.Equal(t, startsLater.ID, *got[2].RecurringID)
}

func TestMaterialize_SkipsRulesGeneratedThisMonth(t *testing.T) {
	rent := monthlyRule("Rent", 1)
	gym := monthlyRule("Gym", 3)

	existing := []*transaction.Transaction{
		{RecurringID: new(rent.ID), Date: day(2024, 2, 1)},
		// Last month's instance does not settle this month.
		{RecurringID: new(gym.ID), Date: day(2024, 1, 3)},
		// Same month a year earlier does not count either.
		{RecurringID: new(gym.ID), Date: day(2023, 2, 3)},
	}

	got := recurring.Materialize([]*recurring.Rule{rent, gym}, existing, now)
	require.Len(t, got, 1)
	assert.Equal(t, gym.ID, *got[0].RecurringID)
}

func TestMaterialize_Idempotent(t *testing.T) {
	rules := []*recurring.Rule{monthlyRule("Rent", 1), monthlyRule("Internet", 12)}

	first := recurring.Materialize(rules, nil, now)
	require.Len(t, first, 2)

	existing := make([]*transaction.Transaction, len(first))
	for i, p := range first {
		existing[i] = &transaction.Transaction{RecurringID: p.RecurringID, Date: p.Date}
	}

	assert.Empty(t, recurring.Materialize(rules, existing, now))
	assert.Empty(t, recurring.Materialize(rules, existing, now.AddDate(0, 0, 10)))
	assert.Len(t, recurring.Materialize(rules, existing, now.AddDate(0, 1, 0)), 2)
}

func TestMaterialize_DuplicateRuleOnce(t *testing.T) {
	rent := monthlyRule("Rent", 1)

	got := recurring.Materialize([]*recurring.Rule{rent, rent}, nil, now)
	assert.Len(t, got, 1)
}

func TestRule_Validate(t *testing.T) {
	type testCase struct {
		name    string
		mutate  func(r *recurring.Rule)
		wantErr bool
	}

	tests := []testCase{
		{name: "Valid", mutate: func(*recurring.Rule) {}},
		{name: "MissingName", mutate: func(r *recurring.Rule) { r.Name = "" }, wantErr: true},
		{name: "InvestmentType", mutate: func(r *recurring.Rule) { r.Type = transaction.TypeInvestment }, wantErr: true},
		{name: "NegativeAmount", mutate: func(r *recurring.Rule) { r.Amount = -1 }, wantErr: true},
		{name: "DayOutOfRange", mutate: func(r *recurring.Rule) { r.Recurrence.DayOfMonth = 32 }, wantErr: true},
		{
			name: "WeeklyWithoutDay",
			mutate: func(r *recurring.Rule) {
				r.Recurrence = recurring.Recurrence{Type: recurring.Weekly}
			},
			wantErr: true,
		},
		{
			name: "CustomZeroInterval",
			mutate: func(r *recurring.Rule) {
				r.Recurrence = recurring.Recurrence{Type: recurring.Custom}
			},
			wantErr: true,
		},
		{
			name: "UnknownFrequency",
			mutate: func(r *recurring.Rule) {
				r.Recurrence = recurring.Recurrence{Type: "yearly"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := monthlyRule("Rent", 1)
			tt.mutate(r)

			err := r.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, recurring.ErrInvalid)
				return
			}

			assert.NoError(t, err)
		})
	}
}
