package importer

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/MrJamesThe3rd/wealthboard/internal/importer/receipt"
	"github.com/MrJamesThe3rd/wealthboard/internal/importer/sheet"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=importer
type Transactions interface {
	ImportBatch(ctx context.Context, params []transaction.CreateParams) (*transaction.ImportResult, error)
	CreateBatch(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error)
}

// Categorizer suggests a learned category for free text.
type Categorizer interface {
	Suggest(ctx context.Context, raw string) (string, error)
}

type Service struct {
	sheet      SheetParser
	txs        Transactions
	categories Categorizer
}

func NewService(txs Transactions, categories Categorizer) *Service {
	return &Service{
		sheet:      sheet.NewParser(nil),
		txs:        txs,
		categories: categories,
	}
}

func (s *Service) ImportSheet(ctx context.Context, r io.Reader) (*SheetImport, error) {
	parsed, err := s.sheet.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse sheet: %w", err)
	}

	result, err := s.txs.ImportBatch(ctx, parsed.Params)
	if err != nil {
		return nil, err
	}

	return &SheetImport{
		Result:   result,
		Unmapped: parsed.Unmapped,
		Skipped:  parsed.Skipped,
		Charset:  parsed.Charset,
	}, nil
}

// Confirm writes rows the user accepted after reviewing import conflicts.
func (s *Service) Confirm(ctx context.Context, params []transaction.CreateParams) ([]*transaction.Transaction, error) {
	return s.txs.CreateBatch(ctx, params)
}

// ParseReceipt reads receipt text, preferring a learned category over the
// keyword guess.
func (s *Service) ParseReceipt(ctx context.Context, text string, now time.Time) (receipt.Receipt, error) {
	r := receipt.Parse(text, now)

	if s.categories == nil {
		return r, nil
	}

	category, err := s.categories.Suggest(ctx, text)
	if err != nil {
		return receipt.Receipt{}, fmt.Errorf("suggest category: %w", err)
	}

	if category != "" {
		r.SuggestedCategory = category
		r.CategorySource = receipt.SourceLearned
	}

	return r, nil
}
