package insight_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wealthboard/internal/insight"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

func TestService_ExpenseSuggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := insight.NewMockTransactions(ctrl)
	svc := insight.NewService(txs, 3)

	now := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	kind := transaction.TypeExpense

	gomock.InOrder(
		txs.EXPECT().
			ListPeriod(gomock.Any(),
				time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC),
				&kind).
			Return([]*transaction.Transaction{expense("Groceries", "", 3000)}, nil),
		txs.EXPECT().
			ListPeriod(gomock.Any(),
				time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC),
				&kind).
			Return([]*transaction.Transaction{expense("Groceries", "", 4500)}, nil),
	)

	got, err := svc.ExpenseSuggestions(context.Background(), now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, insight.PriorityHigh, got[0].Priority)
}

func TestService_ExpenseSuggestions_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := insight.NewMockTransactions(ctrl)
	svc := insight.NewService(txs, 3)

	txs.EXPECT().ListPeriod(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

	_, err := svc.ExpenseSuggestions(context.Background(), time.Now())
	assert.Error(t, err)
}

