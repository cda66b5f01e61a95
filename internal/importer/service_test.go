package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wealthboard/internal/importer"
	"github.com/MrJamesThe3rd/wealthboard/internal/importer/receipt"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

var now = time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

func TestService_ImportSheet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := importer.NewMockTransactions(ctrl)
	svc := importer.NewService(txs, nil)

	txs.EXPECT().
		ImportBatch(gomock.Any(), gomock.Len(2)).
		DoAndReturn(func(_ context.Context, params []transaction.CreateParams) (*transaction.ImportResult, error) {
			assert.Equal(t, "Utilities", params[0].Category)
			assert.Equal(t, transaction.TypeInvestment, params[1].Type)

			return &transaction.ImportResult{New: params}, nil
		})

	got, err := svc.ImportSheet(context.Background(), strings.NewReader("Items,Jan 2024\nInternet,800\nNPS,5000\nMystery,10\n"))
	require.NoError(t, err)
	assert.Len(t, got.Result.New, 2)
	assert.Equal(t, []string{"Mystery"}, got.Unmapped)
}

func TestService_ImportSheet_ParseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := importer.NewService(importer.NewMockTransactions(ctrl), nil)

	_, err := svc.ImportSheet(context.Background(), strings.NewReader(""))
	assert.Error(t, err)
}

func TestService_ParseReceipt(t *testing.T) {
	text := "Zomato\nTotal 350.00"

	tests := []struct {
		name       string
		learned    string
		learnErr   error
		wantCat    string
		wantSource receipt.Source
		wantErr    bool
	}{
		{name: "learned mapping wins", learned: "Eating Out", wantCat: "Eating Out", wantSource: receipt.SourceLearned},
		{name: "keyword fallback", wantCat: "Food & Dining", wantSource: receipt.SourceKeyword},
		{name: "lookup failure", learnErr: errors.New("db down"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cats := importer.NewMockCategorizer(ctrl)
			svc := importer.NewService(importer.NewMockTransactions(ctrl), cats)

			cats.EXPECT().Suggest(gomock.Any(), text).Return(tt.learned, tt.learnErr)

			got, err := svc.ParseReceipt(context.Background(), text, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCat, got.SuggestedCategory)
			assert.Equal(t, tt.wantSource, got.CategorySource)
			require.NotNil(t, got.Amount)
			assert.InDelta(t, 350.0, *got.Amount, 1e-9)
		})
	}
}

func TestService_Confirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	txs := importer.NewMockTransactions(ctrl)
	svc := importer.NewService(txs, nil)

	params := []transaction.CreateParams{{Date: now, Type: transaction.TypeExpense, Category: "Rent", Amount: 10}}
	txs.EXPECT().CreateBatch(gomock.Any(), params).Return([]*transaction.Transaction{{Category: "Rent"}}, nil)

	got, err := svc.Confirm(context.Background(), params)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
