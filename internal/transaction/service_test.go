package transaction_test

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

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params transaction.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantErr   bool
		wantErrIs error
	}

	valid := transaction.CreateParams{
		Amount:       1000,
		Type:         transaction.TypeExpense,
		Category:     "Groceries",
		Description:  "Weekly shop",
		Date:         time.Date(2023, 10, 27, 0, 0, 0, 0, time.UTC),
		Acknowledged: true,
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{params: valid},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
						tx.ID = uuid.New()
						tx.CreatedAt = time.Now()
						return nil
					})
			},
		},
		{
			name: "RepoError",
			args: args{params: valid},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					CreateTransaction(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
		{
			name: "NegativeAmount",
			args: args{params: transaction.CreateParams{
				Amount: -5, Type: transaction.TypeExpense, Category: "Groceries",
			}},
			wantErr:   true,
			wantErrIs: transaction.ErrInvalidAmount,
		},
		{
			name: "NaNAmount",
			args: args{params: transaction.CreateParams{
				Amount: math.NaN(), Type: transaction.TypeIncome, Category: "Salary",
			}},
			wantErr:   true,
			wantErrIs: transaction.ErrInvalidAmount,
		},
		{
			name: "UnknownType",
			args: args{params: transaction.CreateParams{
				Amount: 5, Type: "transfer", Category: "Groceries",
			}},
			wantErr:   true,
			wantErrIs: transaction.ErrInvalidType,
		},
		{
			name: "MissingCategory",
			args: args{params: transaction.CreateParams{
				Amount: 5, Type: transaction.TypeInvestment,
			}},
			wantErr:   true,
			wantErrIs: transaction.ErrMissingCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				if tt.wantErrIs != nil {
					assert.ErrorIs(t, err, tt.wantErrIs)
				}

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "Groceries", got.Category)
			assert.True(t, got.Acknowledged)
		})
	}
}

func TestService_List(t *testing.T) {
	type args struct {
		filter transaction.ListFilter
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *transaction.MockRepository)
		wantLen   int
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "Success",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return([]*transaction.Transaction{
						{ID: uuid.New()},
						{ID: uuid.New()},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name: "Error",
			args: args{filter: transaction.ListFilter{}},
			setupMock: func(m *transaction.MockRepository) {
				m.EXPECT().
					ListTransactions(gomock.Any(), transaction.ListFilter{}).
					Return(nil, errors.New("list error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := transaction.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := transaction.NewService(repo)
			got, err := svc.List(context.Background(), tt.args.filter)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestService_ListPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	expense := transaction.TypeExpense

	repo.EXPECT().
		ListTransactions(gomock.Any(), transaction.ListFilter{Type: &expense, StartDate: &start, EndDate: &end}).
		Return([]*transaction.Transaction{{ID: uuid.New()}}, nil)

	got, err := svc.ListPeriod(context.Background(), start, end, &expense)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Update_Validates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	err := svc.Update(context.Background(), &transaction.Transaction{
		ID: uuid.New(), Type: transaction.TypeExpense, Category: "Rent", Amount: math.Inf(1),
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
}

func TestService_Acknowledge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	id := uuid.New()
	repo.EXPECT().SetAcknowledged(gomock.Any(), id, true).Return(nil)

	require.NoError(t, svc.Acknowledge(context.Background(), id))
}

func TestService_ImportBatch_NoConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{
		{
			Amount:       85000,
			Type:         transaction.TypeIncome,
			Category:     "Salary",
			Description:  "Income",
			Date:         date,
			Acknowledged: true,
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return(nil, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, result.Imported, 1)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_ImportBatch_WithConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo)

	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{
		{
			Amount:      12000,
			Type:        transaction.TypeExpense,
			Category:    "Loan",
			Description: "Home Loan",
			Date:        date,
		},
		{
			Amount:      3200,
			Type:        transaction.TypeExpense,
			Category:    "Utilities",
			Description: "Electricity",
			Date:        date,
		},
	}

	existing := &transaction.Transaction{
		ID:          uuid.New(),
		Amount:      12000,
		Type:        transaction.TypeExpense,
		Category:    "Loan",
		Description: "Home Loan",
		Date:        date,
	}

	repo.EXPECT().BeginImport(gomock.Any(), date, date).Return(itx, nil)
	itx.EXPECT().FindDuplicates(gomock.Any(), params).Return([]*transaction.Transaction{existing}, nil)
	itx.EXPECT().Rollback().Return(nil)

	result, err := svc.ImportBatch(context.Background(), params)
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Len(t, result.New, 1)
	assert.Len(t, result.Conflicts, 1)
	assert.Equal(t, params[0], result.Conflicts[0].Incoming)
	assert.Equal(t, existing, result.Conflicts[0].Existing)
}

func TestService_ImportBatch_InvalidRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	_, err := svc.ImportBatch(context.Background(), []transaction.CreateParams{
		{Amount: -1, Type: transaction.TypeExpense, Category: "Food"},
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)
}

func TestService_ImportBatch_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	svc := transaction.NewService(repo)

	result, err := svc.ImportBatch(context.Background(), []transaction.CreateParams{})
	require.NoError(t, err)
	assert.Empty(t, result.Imported)
	assert.Empty(t, result.Conflicts)
	assert.Empty(t, result.New)
}

func TestService_CreateBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := transaction.NewMockRepository(ctrl)
	itx := transaction.NewMockImportTx(ctrl)
	svc := transaction.NewService(repo)

	ruleID := uuid.New()
	date := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	params := []transaction.CreateParams{
		{
			Amount:      999,
			Type:        transaction.TypeExpense,
			Category:    "Subscriptions",
			Description: "Netflix (Recurring)",
			IsRecurring: true,
			RecurringID: &ruleID,
			Date:        date,
		},
	}

	repo.EXPECT().BeginImport(gomock.Any(), date, date).Return(itx, nil)
	itx.EXPECT().CreateTransactions(gomock.Any(), gomock.Any()).Return(nil)
	itx.EXPECT().Commit().Return(nil)
	itx.EXPECT().Rollback().Return(nil)

	txs, err := svc.CreateBatch(context.Background(), params)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.InDelta(t, 999.0, txs[0].Amount, 0.001)
	assert.Equal(t, transaction.TypeExpense, txs[0].Type)
	assert.True(t, txs[0].IsRecurring)
	assert.Equal(t, &ruleID, txs[0].RecurringID)
}

func TestMonthBounds(t *testing.T) {
	d := time.Date(2024, 2, 17, 15, 4, 5, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), transaction.MonthStart(d))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), transaction.MonthEnd(d))
	assert.True(t, transaction.SameMonth(d, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, transaction.SameMonth(d, time.Date(2023, 2, 17, 0, 0, 0, 0, time.UTC)))
}
