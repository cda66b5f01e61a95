package export

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type fakeTransactions struct {
	txs    []*transaction.Transaction
	err    error
	filter transaction.ListFilter
}

func (f *fakeTransactions) List(_ context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	f.filter = filter
	return f.txs, f.err
}

func date(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func sample() []*transaction.Transaction {
	return []*transaction.Transaction{
		{Date: date(1), Type: transaction.TypeIncome, Category: "Salary", Amount: 125000, Description: "January salary", Acknowledged: true},
		{Date: date(5), Type: transaction.TypeExpense, Category: "Rent", Amount: 25000.5, Description: "Rent, flat 302", IsRecurring: true},
		{Date: date(9), Type: transaction.TypeInvestment, Category: "Mutual Funds", Amount: 10000, Acknowledged: true},
	}
}

func TestService_Export(t *testing.T) {
	repo := &fakeTransactions{txs: sample()}
	svc := NewService(repo)

	var buf bytes.Buffer

	sum, err := svc.Export(context.Background(), transaction.ListFilter{Newest: true}, &buf)
	require.NoError(t, err)

	assert.False(t, repo.filter.Newest)

	want := "Date,Type,Category,Description,Amount,Recurring,Acknowledged\n" +
		"2024-01-01,income,Salary,January salary,125000.00,false,true\n" +
		"2024-01-05,expense,Rent,\"Rent, flat 302\",25000.50,true,false\n" +
		"2024-01-09,investment,Mutual Funds,,10000.00,false,true\n"
	assert.Equal(t, want, buf.String())

	assert.Equal(t, 3, sum.Count)
	assert.Equal(t, date(1), sum.From)
	assert.Equal(t, date(9), sum.To)
	assert.InDelta(t, 25000.5, sum.Expenses, 1e-9)
}

func TestService_Export_ListError(t *testing.T) {
	svc := NewService(&fakeTransactions{err: errors.New("boom")})

	_, err := svc.Export(context.Background(), transaction.ListFilter{}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestService_ExportFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(&fakeTransactions{txs: sample()})

	start, end := date(1), date(31)

	path, sum, err := svc.ExportFile(context.Background(), transaction.ListFilter{StartDate: &start, EndDate: &end}, filepath.Join(dir, "out"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "out", "transactions_20240101_20240131.csv"), path)
	assert.Equal(t, 3, sum.Count)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(content), "\n"))
}

func TestSummary_Text(t *testing.T) {
	sum := Summary{Count: 2, Income: 125000, Expenses: 1234.5, From: date(1), To: date(5)}

	text := sum.Text()
	assert.Contains(t, text, "2 transactions from 2024-01-01 to 2024-01-05")
	assert.Contains(t, text, "+125,000.00")
	assert.Contains(t, text, "-1,234.50")
	assert.Contains(t, text, "123,765.50")

	assert.Equal(t, "No transactions exported.\n", Summary{}.Text())
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "transactions_start_end.csv", Filename(transaction.ListFilter{}))
}
