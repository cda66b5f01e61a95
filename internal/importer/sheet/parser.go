package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/wealthboard/internal/encoding"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

var (
	ErrEmpty    = errors.New("sheet is empty")
	ErrNoMonths = errors.New("sheet header has no month columns")
)

var monthLayouts = []string{"Jan 2006", "January 2006", "Jan-2006", "Jan-06", "2006-01"}

// Parser reads a monthly budget sheet: one row per item, one column per
// month, with amounts in the cells.
type Parser struct {
	items itemIndex
}

// NewParser uses DefaultItems when items is nil.
func NewParser(items map[string]Entry) *Parser {
	if items == nil {
		items = DefaultItems
	}

	return &Parser{items: indexItems(items)}
}

type Result struct {
	Params []transaction.CreateParams
	// Unmapped lists row items with no entry in the lookup table, in sheet order.
	Unmapped []string
	// Skipped counts non-empty cells that did not hold a number.
	Skipped int
	Charset string
}

func (p *Parser) Parse(r io.Reader) (*Result, error) {
	utf8r, charset, err := enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	headerIdx := slices.IndexFunc(rows, func(row []string) bool { return !blank(row) })
	if headerIdx < 0 {
		return nil, ErrEmpty
	}

	months := parseHeader(rows[headerIdx])
	if !slices.ContainsFunc(months, func(m time.Time) bool { return !m.IsZero() }) {
		return nil, ErrNoMonths
	}

	res := &Result{Charset: charset}
	seen := make(map[string]bool)

	for _, row := range rows[headerIdx+1:] {
		item := strings.TrimSpace(cellValue(row, 0))
		if item == "" {
			continue
		}

		entry, ok := p.items[itemKey(item)]
		if !ok {
			if !seen[item] {
				seen[item] = true
				res.Unmapped = append(res.Unmapped, item)
			}

			continue
		}

		for col := 1; col < len(row) && col < len(months); col++ {
			if months[col].IsZero() {
				continue
			}

			cell := cellValue(row, col)
			if cell == "" {
				continue
			}

			amount, err := parseAmount(cell)
			if err != nil {
				res.Skipped++
				continue
			}

			if !amount.IsPositive() {
				continue
			}

			res.Params = append(res.Params, transaction.CreateParams{
				Date:         months[col],
				Type:         entry.Type,
				Category:     entry.Category,
				Amount:       amount.Round(2).InexactFloat64(),
				Description:  item,
				Acknowledged: true,
			})
		}
	}

	return res, nil
}

// parseHeader returns the month of each column, zero for the item column and
// for summary or unparseable columns such as "Totals" and "Comments".
func parseHeader(header []string) []time.Time {
	months := make([]time.Time, len(header))

	for i := 1; i < len(header); i++ {
		months[i], _ = parseMonth(header[i])
	}

	return months
}

func parseMonth(label string) (time.Time, bool) {
	label = strings.TrimSpace(label)

	switch strings.ToLower(label) {
	case "", "totals", "total", "comments":
		return time.Time{}, false
	}

	if lower := strings.ToLower(label); strings.HasPrefix(lower, "sept") && !strings.HasPrefix(lower, "september") {
		label = "Sep" + label[4:]
	}

	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, label); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
