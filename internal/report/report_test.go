package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wealthboard/internal/report"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

func day(m time.Month, d int) time.Time {
	return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(date time.Time, t transaction.Type, category string, amount float64) *transaction.Transaction {
	return &transaction.Transaction{Date: date, Type: t, Category: category, Amount: amount}
}

func TestBuildDashboard(t *testing.T) {
	txs := []*transaction.Transaction{
		tx(day(1, 1), transaction.TypeIncome, "Salary", 5000),
		tx(day(1, 3), transaction.TypeExpense, "Rent", 1500),
		tx(day(1, 5), transaction.TypeInvestment, "SIP", 1000),
		tx(day(1, 2), transaction.TypeExpense, "Groceries", 0.1),
		tx(day(1, 7), transaction.TypeExpense, "Groceries", 0.2),
		tx(day(1, 4), transaction.TypeExpense, "Fuel", 100),
	}

	got := report.BuildDashboard(txs, 15000)

	assert.InDelta(t, 5000.0, got.Income, 1e-9)
	assert.Equal(t, 1600.3, got.Expenses)
	assert.InDelta(t, 1000.0, got.Investments, 1e-9)
	assert.Equal(t, 2399.7, got.Net)
	assert.Equal(t, 17399.7, got.AvailableCash)

	require.Len(t, got.Recent, report.RecentLimit)
	assert.Equal(t, day(1, 7), got.Recent[0].Date)
	assert.Equal(t, day(1, 2), got.Recent[4].Date)
}

func TestBuildMonthly(t *testing.T) {
	current := []*transaction.Transaction{
		tx(day(2, 1), transaction.TypeIncome, "Salary", 4000),
		tx(day(2, 10), transaction.TypeIncome, "Freelance", 1000),
		tx(day(2, 3), transaction.TypeExpense, "Rent", 1500),
		tx(day(2, 3), transaction.TypeExpense, "Dining", 500),
		tx(day(2, 29), transaction.TypeExpense, "Dining", 500),
	}
	previous := []*transaction.Transaction{
		tx(day(1, 1), transaction.TypeIncome, "Salary", 4000),
		tx(day(1, 3), transaction.TypeExpense, "Rent", 2000),
	}

	got := report.BuildMonthly(day(2, 15), current, previous)

	assert.Equal(t, day(2, 1), got.Month)
	assert.InDelta(t, 5000.0, got.Totals.Income, 1e-9)
	assert.InDelta(t, 2500.0, got.Totals.Expenses, 1e-9)
	assert.InDelta(t, 2500.0, got.Totals.Net, 1e-9)
	assert.InDelta(t, 50.0, got.SavingsRate, 1e-9)
	assert.Equal(t, 5, got.TransactionsCount)

	assert.InDelta(t, 25.0, got.Change.Income, 1e-9)
	assert.InDelta(t, 25.0, got.Change.Expenses, 1e-9)
	assert.InDelta(t, 25.0, got.Change.Net, 1e-9)
	assert.Zero(t, got.Change.Investments)

	require.Len(t, got.ExpenseBreakdown, 2)
	assert.Equal(t, "Rent", got.ExpenseBreakdown[0].Category)
	assert.InDelta(t, 60.0, got.ExpenseBreakdown[0].Share, 1e-9)
	assert.Equal(t, "Dining", got.ExpenseBreakdown[1].Category)

	require.Len(t, got.IncomeBreakdown, 2)
	assert.Equal(t, "Salary", got.IncomeBreakdown[0].Category)

	require.Len(t, got.Daily, 29)
	assert.InDelta(t, 2000.0, got.Daily[2].Expense, 1e-9)
	assert.InDelta(t, 500.0, got.Daily[28].Expense, 1e-9)
	assert.InDelta(t, 4000.0, got.Daily[0].Income, 1e-9)
}

func TestParseMonth(t *testing.T) {
	got, err := report.ParseMonth("2024-02")
	require.NoError(t, err)
	assert.Equal(t, day(2, 1), got)

	_, err = report.ParseMonth("Feb 2024")
	assert.ErrorIs(t, err, report.ErrInvalidMonth)
}

func TestService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := report.NewMockTransactions(ctrl)
	gen := report.NewMockGenerator(ctrl)
	svc := report.NewService(txs, gen, 100)

	now := day(3, 10)

	gomock.InOrder(
		gen.EXPECT().Generate(gomock.Any(), now).Return(nil, nil),
		txs.EXPECT().List(gomock.Any(), transaction.ListFilter{Newest: true}).Return([]*transaction.Transaction{
			tx(day(3, 1), transaction.TypeIncome, "Salary", 50),
		}, nil),
	)

	got, err := svc.Dashboard(context.Background(), now)
	require.NoError(t, err)
	assert.InDelta(t, 150.0, got.AvailableCash, 1e-9)
}

func TestService_Dashboard_GenerateFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	gen := report.NewMockGenerator(ctrl)
	svc := report.NewService(report.NewMockTransactions(ctrl), gen, 0)

	boom := errors.New("boom")
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.Dashboard(context.Background(), day(3, 10))
	assert.ErrorIs(t, err, boom)
}

func TestService_Monthly(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := report.NewMockTransactions(ctrl)
	svc := report.NewService(txs, nil, 0)

	txs.EXPECT().ListPeriod(gomock.Any(), day(3, 1), day(3, 31), nil).Return([]*transaction.Transaction{
		tx(day(3, 5), transaction.TypeExpense, "Rent", 300),
	}, nil)
	txs.EXPECT().ListPeriod(gomock.Any(), day(2, 1), day(2, 29), nil).Return(nil, nil)

	got, err := svc.Monthly(context.Background(), day(3, 20))
	require.NoError(t, err)
	assert.InDelta(t, 300.0, got.Totals.Expenses, 1e-9)
	assert.Zero(t, got.Change.Expenses)
}

func TestBuildMonthly_ChangeFromNegativeNet(t *testing.T) {
	current := []*transaction.Transaction{
		tx(day(2, 1), transaction.TypeIncome, "Salary", 1500),
		tx(day(2, 3), transaction.TypeExpense, "Rent", 1000),
	}
	previous := []*transaction.Transaction{
		tx(day(1, 1), transaction.TypeIncome, "Salary", 1000),
		tx(day(1, 3), transaction.TypeExpense, "Rent", 2000),
	}

	got := report.BuildMonthly(day(2, 15), current, previous)

	assert.InDelta(t, -1000.0, got.Previous.Net, 1e-9)
	assert.InDelta(t, 150.0, got.Change.Net, 1e-9)
	assert.InDelta(t, -50.0, got.Change.Expenses, 1e-9)
}
