package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

var header = []string{"Date", "Type", "Category", "Description", "Amount", "Recurring", "Acknowledged"}

type Transactions interface {
	List(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error)
}

// Summary totals the exported rows.
type Summary struct {
	Count       int
	Income      float64
	Expenses    float64
	Investments float64
	From        time.Time
	To          time.Time
}

// Service exports transactions as CSV.
type Service struct {
	transactions Transactions
}

func NewService(txs Transactions) *Service {
	return &Service{transactions: txs}
}

// Export writes the transactions matching filter to w as CSV, oldest first.
func (s *Service) Export(ctx context.Context, filter transaction.ListFilter, w io.Writer) (Summary, error) {
	filter.Newest = false

	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return Summary{}, fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return Summary{}, fmt.Errorf("writing header: %w", err)
	}

	var sum Summary

	for _, t := range txs {
		record := []string{
			t.Date.Format(time.DateOnly),
			string(t.Type),
			t.Category,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
			strconv.FormatBool(t.IsRecurring),
			strconv.FormatBool(t.Acknowledged),
		}

		if err := cw.Write(record); err != nil {
			return Summary{}, fmt.Errorf("writing transaction %s: %w", t.ID, err)
		}

		sum.add(t)
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return Summary{}, fmt.Errorf("flushing csv: %w", err)
	}

	return sum, nil
}

// ExportFile writes the export into dir and returns the file path.
func (s *Service) ExportFile(ctx context.Context, filter transaction.ListFilter, dir string) (string, Summary, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, Filename(filter))

	f, err := os.Create(path)
	if err != nil {
		return "", Summary{}, fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	sum, err := s.Export(ctx, filter, f)
	if err != nil {
		return "", Summary{}, err
	}

	return path, sum, nil
}

// Filename names an export after its date range, e.g. transactions_20240101_20240131.csv.
func Filename(filter transaction.ListFilter) string {
	from, to := "start", "end"

	if filter.StartDate != nil {
		from = filter.StartDate.Format("20060102")
	}

	if filter.EndDate != nil {
		to = filter.EndDate.Format("20060102")
	}

	return fmt.Sprintf("transactions_%s_%s.csv", from, to)
}

func (s *Summary) add(t *transaction.Transaction) {
	if s.Count == 0 || t.Date.Before(s.From) {
		s.From = t.Date
	}

	if s.Count == 0 || t.Date.After(s.To) {
		s.To = t.Date
	}

	s.Count++

	switch t.Type {
	case transaction.TypeIncome:
		s.Income += t.Amount
	case transaction.TypeExpense:
		s.Expenses += t.Amount
	case transaction.TypeInvestment:
		s.Investments += t.Amount
	}
}

// Text renders the summary for a message body or terminal.
func (s Summary) Text() string {
	if s.Count == 0 {
		return "No transactions exported.\n"
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%s transactions from %s to %s\n",
		humanize.Comma(int64(s.Count)), s.From.Format(time.DateOnly), s.To.Format(time.DateOnly))
	fmt.Fprintf(&sb, "* Income:      +%s\n", Money(s.Income))
	fmt.Fprintf(&sb, "* Expenses:    -%s\n", Money(s.Expenses))
	fmt.Fprintf(&sb, "* Investments: -%s\n", Money(s.Investments))
	fmt.Fprintf(&sb, "* Net:          %s\n", Money(s.Income-s.Expenses-s.Investments))

	return sb.String()
}

// Money formats an amount with thousands separators and two decimals.
func Money(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
