package liability_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
)

var start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestProject(t *testing.T) {
	type testCase struct {
		name            string
		terms           liability.Terms
		wantMonths      int
		wantCheckpoints int
		wantInterest    float64
	}

	tests := []testCase{
		{
			name:            "Amortizing",
			terms:           liability.Terms{Outstanding: 100000, AnnualRate: 12, EMI: 2000},
			wantMonths:      70,
			wantCheckpoints: 6,
			wantInterest:    39323.66,
		},
		{
			name:            "InterestFree",
			terms:           liability.Terms{Outstanding: 50000, AnnualRate: 0, EMI: 5000},
			wantMonths:      10,
			wantCheckpoints: 1,
			wantInterest:    0,
		},
		{
			name:       "PaymentBelowInterest",
			terms:      liability.Terms{Outstanding: 100000, AnnualRate: 24, EMI: 1500},
			wantMonths: liability.NonAmortizing,
		},
		{
			name:       "PaymentEqualsInterest",
			terms:      liability.Terms{Outstanding: 100000, AnnualRate: 12, EMI: 1000},
			wantMonths: liability.NonAmortizing,
		},
		{
			name:       "NoInstallment",
			terms:      liability.Terms{Outstanding: 100000, AnnualRate: 8},
			wantMonths: liability.NonAmortizing,
		},
		{
			name:            "CappedAtFiftyYears",
			terms:           liability.Terms{Outstanding: 100000, AnnualRate: 12, EMI: 1000.01},
			wantMonths:      liability.MaxMonths,
			wantCheckpoints: 50,
			wantInterest:    599615.42,
		},
		{
			name:       "AlreadyClosed",
			terms:      liability.Terms{Outstanding: 0, AnnualRate: 9, EMI: 500},
			wantMonths: 0,
		},
		{
			name:       "ClosedWithoutInstallment",
			terms:      liability.Terms{Outstanding: 0, AnnualRate: 9},
			wantMonths: liability.NonAmortizing,
		},
		{
			name:       "NaNRate",
			terms:      liability.Terms{Outstanding: 1000, AnnualRate: math.NaN(), EMI: 500},
			wantMonths: liability.NonAmortizing,
		},
		{
			name:       "NegativeBalance",
			terms:      liability.Terms{Outstanding: -1000, AnnualRate: 5, EMI: 500},
			wantMonths: liability.NonAmortizing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := liability.Project(tt.terms, start)

			assert.Equal(t, tt.wantMonths, got.MonthsToClose)
			assert.Len(t, got.Checkpoints, tt.wantCheckpoints)
			assert.InDelta(t, tt.wantInterest, got.TotalInterest, 0.01)

			if got.MonthsToClose == liability.NonAmortizing {
				assert.False(t, got.Amortizes())
				assert.Nil(t, got.ClosureDate)
				assert.Zero(t, got.TotalInterest)
			}
		})
	}
}

func TestProject_FirstMonth(t *testing.T) {
	terms := liability.Terms{Outstanding: 100000, AnnualRate: 12, EMI: 2000}

	interest := terms.Outstanding * terms.MonthlyRate()
	assert.InDelta(t, 1000.0, interest, 1e-9)
	assert.InDelta(t, 99000.0, terms.Outstanding-(terms.EMI-interest), 1e-9)
}

func TestProject_Checkpoints(t *testing.T) {
	got := liability.Project(liability.Terms{Outstanding: 100000, AnnualRate: 12, EMI: 2000}, start)
	require.True(t, got.Amortizes())
	require.Len(t, got.Checkpoints, 6)

	labels := make([]string, 0, len(got.Checkpoints))
	for i, c := range got.Checkpoints {
		labels = append(labels, c.PeriodLabel)

		if i > 0 {
			prev := got.Checkpoints[i-1]
			assert.LessOrEqual(t, c.Balance, prev.Balance)
			assert.GreaterOrEqual(t, c.CumulativeInterest, prev.CumulativeInterest)
		}
	}

	assert.Equal(t, []string{"2025", "2026", "2027", "2028", "2029", "2029"}, labels)
	assert.InDelta(t, 87317.50, got.Checkpoints[0].Balance, 0.01)

	last := got.Checkpoints[len(got.Checkpoints)-1]
	assert.Equal(t, 70, last.Month)
	assert.Zero(t, last.Balance)
	assert.InDelta(t, got.TotalInterest, last.CumulativeInterest, 1e-9)

	assert.InDelta(t, 139323.66, got.TotalCost, 0.01)
	require.NotNil(t, got.ClosureDate)
	assert.Equal(t, time.Date(2029, 11, 1, 0, 0, 0, 0, time.UTC), *got.ClosureDate)
}

func TestProject_TerminatesWithinCap(t *testing.T) {
	for _, emi := range []float64{1000.5, 1001, 1100, 1500, 3000, 50000, 200000} {
		got := liability.Project(liability.Terms{Outstanding: 100000, AnnualRate: 12, EMI: emi}, start)

		assert.Greater(t, got.MonthsToClose, 0, "emi %v", emi)
		assert.LessOrEqual(t, got.MonthsToClose, liability.MaxMonths, "emi %v", emi)
	}
}

func TestTenure(t *testing.T) {
	assert.Equal(t, "5 yrs 10 mos", liability.Tenure(70))
	assert.Equal(t, "0 yrs 0 mos", liability.Tenure(0))
	assert.Equal(t, "never", liability.Tenure(liability.NonAmortizing))
}

func TestSummarize(t *testing.T) {
	emi := 2000.0

	got := liability.Summarize([]*liability.Liability{
		{TotalAmount: 150000, OutstandingAmount: 100000, InterestRate: 12, EMI: &emi},
		{TotalAmount: 50000, OutstandingAmount: 20000, InterestRate: 8},
	})

	assert.Equal(t, 2, got.Count)
	assert.InDelta(t, 200000.0, got.TotalOriginal, 1e-9)
	assert.InDelta(t, 120000.0, got.TotalOutstanding, 1e-9)
	assert.InDelta(t, 2000.0, got.TotalEMI, 1e-9)
	assert.InDelta(t, 10.0, got.AverageRate, 1e-9)
	assert.InDelta(t, 40.0, got.RepaymentProgress, 1e-9)

	assert.Equal(t, liability.Summary{}, liability.Summarize(nil))
}
