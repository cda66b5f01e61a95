package liability_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
)

func TestService_Create(t *testing.T) {
	emi := 2000.0
	negative := -1.0

	type testCase struct {
		name      string
		input     liability.Liability
		setupMock func(m *liability.MockRepository)
		wantErr   bool
		wantErrIs error
	}

	tests := []testCase{
		{
			name: "Success",
			input: liability.Liability{
				Name: "Home Loan", Type: "Mortgage", TotalAmount: 150000,
				OutstandingAmount: 100000, InterestRate: 12, EMI: &emi, StartDate: start,
			},
			setupMock: func(m *liability.MockRepository) {
				m.EXPECT().CreateLiability(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:      "MissingName",
			input:     liability.Liability{TotalAmount: 10, OutstandingAmount: 10},
			wantErr:   true,
			wantErrIs: liability.ErrInvalid,
		},
		{
			name:      "NegativeEMI",
			input:     liability.Liability{Name: "Car", EMI: &negative},
			wantErr:   true,
			wantErrIs: liability.ErrInvalid,
		},
		{
			name:      "InfiniteRate",
			input:     liability.Liability{Name: "Card", InterestRate: math.Inf(1)},
			wantErr:   true,
			wantErrIs: liability.ErrInvalid,
		},
		{
			name: "EndBeforeStart",
			input: liability.Liability{
				Name: "Car", StartDate: start, EndDate: new(start.AddDate(-1, 0, 0)),
			},
			wantErr:   true,
			wantErrIs: liability.ErrInvalid,
		},
		{
			name:  "RepoError",
			input: liability.Liability{Name: "Car"},
			setupMock: func(m *liability.MockRepository) {
				m.EXPECT().CreateLiability(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := liability.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := liability.NewService(repo)
			err := svc.Create(context.Background(), &tt.input)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestService_Projection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := liability.NewMockRepository(ctrl)
	svc := liability.NewService(repo)

	id := uuid.New()
	emi := 1500.0
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().GetLiability(gomock.Any(), id).Return(&liability.Liability{
		ID: id, Name: "Personal Loan", OutstandingAmount: 100000, InterestRate: 24, EMI: &emi,
	}, nil)

	l, p, err := svc.Projection(context.Background(), id, now)
	require.NoError(t, err)
	assert.Equal(t, id, l.ID)
	assert.Equal(t, liability.NonAmortizing, p.MonthsToClose)
	assert.Empty(t, p.Checkpoints)
}

func TestService_Projection_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := liability.NewMockRepository(ctrl)
	svc := liability.NewService(repo)

	repo.EXPECT().GetLiability(gomock.Any(), gomock.Any()).Return(nil, liability.ErrNotFound)

	_, _, err := svc.Projection(context.Background(), uuid.New(), time.Now())
	assert.ErrorIs(t, err, liability.ErrNotFound)
}

func TestService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := liability.NewMockRepository(ctrl)
	svc := liability.NewService(repo)

	repo.EXPECT().ListLiabilities(gomock.Any()).Return([]*liability.Liability{
		{TotalAmount: 1000, OutstandingAmount: 250, InterestRate: 10},
	}, nil)

	got, err := svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count)
	assert.InDelta(t, 75.0, got.RepaymentProgress, 1e-9)
}
