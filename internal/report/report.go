package report

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

var ErrInvalidMonth = errors.New("invalid month, expected YYYY-MM")

// RecentLimit is the number of transactions listed on the dashboard.
const RecentLimit = 5

type Totals struct {
	Income      float64
	Expenses    float64
	Investments float64
	// Net is income minus expenses and investments.
	Net float64
}

type totalsAcc struct {
	income, expenses, investments decimal.Decimal
}

func (a *totalsAcc) add(tx *transaction.Transaction) {
	amount := decimal.NewFromFloat(tx.Amount)

	switch tx.Type {
	case transaction.TypeIncome:
		a.income = a.income.Add(amount)
	case transaction.TypeExpense:
		a.expenses = a.expenses.Add(amount)
	case transaction.TypeInvestment:
		a.investments = a.investments.Add(amount)
	}
}

func (a *totalsAcc) totals() Totals {
	net := a.income.Sub(a.expenses).Sub(a.investments)

	return Totals{
		Income:      a.income.InexactFloat64(),
		Expenses:    a.expenses.InexactFloat64(),
		Investments: a.investments.InexactFloat64(),
		Net:         net.InexactFloat64(),
	}
}

func Summarize(txs []*transaction.Transaction) Totals {
	var acc totalsAcc
	for _, tx := range txs {
		acc.add(tx)
	}

	return acc.totals()
}

type Dashboard struct {
	Totals
	AvailableCash float64
	Recent        []*transaction.Transaction
}

// BuildDashboard derives the cash position from the opening balance and
// every recorded transaction.
func BuildDashboard(txs []*transaction.Transaction, openingBalance float64) Dashboard {
	totals := Summarize(txs)

	recent := slices.Clone(txs)
	slices.SortStableFunc(recent, func(a, b *transaction.Transaction) int {
		return b.Date.Compare(a.Date)
	})

	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}

	cash := decimal.NewFromFloat(openingBalance).Add(decimal.NewFromFloat(totals.Net))

	return Dashboard{
		Totals:        totals,
		AvailableCash: cash.InexactFloat64(),
		Recent:        recent,
	}
}

type CategoryAmount struct {
	Category string
	Amount   float64
	Share    float64 // percent of the type's total
}

type DailyFlow struct {
	Day     int
	Income  float64
	Expense float64
}

type Change struct {
	Income      float64
	Expenses    float64
	Investments float64
	Net         float64
}

type Monthly struct {
	Month    time.Time
	Totals   Totals
	Previous Totals
	// Change holds the percent change against the previous month, 0 when
	// the previous value is 0.
	Change            Change
	IncomeBreakdown   []CategoryAmount
	ExpenseBreakdown  []CategoryAmount
	Daily             []DailyFlow
	SavingsRate       float64
	TransactionsCount int
}

// ParseMonth parses a YYYY-MM month into the first day of that month in UTC.
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}

	return t, nil
}

// BuildMonthly reports on current, the transactions of month, against
// previous, the transactions of the month before.
func BuildMonthly(month time.Time, current, previous []*transaction.Transaction) Monthly {
	m := Monthly{
		Month:             transaction.MonthStart(month),
		Totals:            Summarize(current),
		Previous:          Summarize(previous),
		IncomeBreakdown:   breakdown(current, transaction.TypeIncome),
		ExpenseBreakdown:  breakdown(current, transaction.TypeExpense),
		Daily:             daily(month, current),
		TransactionsCount: len(current),
	}

	m.Change = Change{
		Income:      percentChange(m.Previous.Income, m.Totals.Income),
		Expenses:    percentChange(m.Previous.Expenses, m.Totals.Expenses),
		Investments: percentChange(m.Previous.Investments, m.Totals.Investments),
		Net:         percentChange(m.Previous.Net, m.Totals.Net),
	}

	if m.Totals.Income > 0 {
		m.SavingsRate = round2(m.Totals.Net / m.Totals.Income * 100)
	}

	return m
}

func breakdown(txs []*transaction.Transaction, t transaction.Type) []CategoryAmount {
	sums := make(map[string]decimal.Decimal)
	total := decimal.Zero

	for _, tx := range txs {
		if tx.Type != t {
			continue
		}

		amount := decimal.NewFromFloat(tx.Amount)
		sums[tx.Category] = sums[tx.Category].Add(amount)
		total = total.Add(amount)
	}

	out := make([]CategoryAmount, 0, len(sums))

	for category, sum := range sums {
		c := CategoryAmount{Category: category, Amount: sum.InexactFloat64()}
		if total.IsPositive() {
			c.Share = sum.Div(total).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}

		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b CategoryAmount) int {
		if c := cmp.Compare(b.Amount, a.Amount); c != 0 {
			return c
		}

		return cmp.Compare(a.Category, b.Category)
	})

	return out
}

func daily(month time.Time, txs []*transaction.Transaction) []DailyFlow {
	days := transaction.MonthEnd(month).Day()
	out := make([]DailyFlow, days)

	for i := range out {
		out[i].Day = i + 1
	}

	for _, tx := range txs {
		if !transaction.SameMonth(tx.Date, month) {
			continue
		}

		d := &out[tx.Date.Day()-1]

		switch tx.Type {
		case transaction.TypeIncome:
			d.Income += tx.Amount
		case transaction.TypeExpense:
			d.Expense += tx.Amount
		}
	}

	return out
}

func percentChange(previous, current float64) float64 {
	if previous == 0 {
		return 0
	}

	return round2((current - previous) / math.Abs(previous) * 100)
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
