package liability

import (
	"math"
	"strconv"
	"time"
)

const (
	// NonAmortizing is reported as MonthsToClose when the installment does not
	// cover the first month's interest.
	NonAmortizing = -1
	// MaxMonths bounds the simulation at fifty years.
	MaxMonths = 600
)

// Terms are the inputs of an amortization projection.
type Terms struct {
	Outstanding float64
	AnnualRate  float64 // percent
	EMI         float64
}

func (t Terms) MonthlyRate() float64 {
	return t.AnnualRate / 100 / 12
}

type Checkpoint struct {
	PeriodLabel        string
	Month              int
	Balance            float64
	CumulativeInterest float64
}

type Projection struct {
	Checkpoints   []Checkpoint
	TotalInterest float64
	// MonthsToClose is 0 when nothing is outstanding and NonAmortizing when
	// the installment never clears the balance.
	MonthsToClose int
	TotalCost     float64
	ClosureDate   *time.Time
}

func (p Projection) Amortizes() bool {
	return p.MonthsToClose > 0
}

// Project simulates fixed-installment repayment starting from start. A
// checkpoint is recorded every twelve months and when the balance is cleared.
func Project(t Terms, start time.Time) Projection {
	if !nonNegative(t.Outstanding) || !nonNegative(t.AnnualRate) || !nonNegative(t.EMI) {
		return Projection{MonthsToClose: NonAmortizing}
	}

	rate := t.MonthlyRate()
	balance := t.Outstanding

	if t.EMI <= balance*rate {
		return Projection{MonthsToClose: NonAmortizing}
	}

	if balance == 0 {
		return Projection{ClosureDate: &start}
	}

	var (
		totalInterest float64
		months        int
		checkpoints   []Checkpoint
	)

	for balance > 0 && months < MaxMonths {
		interest := balance * rate
		principal := t.EMI - interest
		balance -= principal
		totalInterest += interest
		months++

		if months%12 == 0 || balance <= 0 {
			checkpoints = append(checkpoints, Checkpoint{
				PeriodLabel:        strconv.Itoa(start.Year() + months/12),
				Month:              months,
				Balance:            math.Max(0, balance),
				CumulativeInterest: totalInterest,
			})
		}
	}

	closure := start.AddDate(0, months, 0)

	return Projection{
		Checkpoints:   checkpoints,
		TotalInterest: totalInterest,
		MonthsToClose: months,
		TotalCost:     t.Outstanding + totalInterest,
		ClosureDate:   &closure,
	}
}

// Tenure formats a month count as "N yrs M mos".
func Tenure(months int) string {
	if months < 0 {
		return "never"
	}

	return strconv.Itoa(months/12) + " yrs " + strconv.Itoa(months%12) + " mos"
}

type Summary struct {
	Count             int
	TotalOriginal     float64
	TotalOutstanding  float64
	TotalEMI          float64
	AverageRate       float64
	RepaymentProgress float64 // percent of the original principal already repaid
}

func Summarize(ls []*Liability) Summary {
	s := Summary{Count: len(ls)}
	if len(ls) == 0 {
		return s
	}

	var rates float64

	for _, l := range ls {
		s.TotalOriginal += l.TotalAmount
		s.TotalOutstanding += l.OutstandingAmount
		rates += l.InterestRate

		if l.EMI != nil {
			s.TotalEMI += *l.EMI
		}
	}

	s.AverageRate = rates / float64(len(ls))

	if s.TotalOriginal > 0 {
		s.RepaymentProgress = (s.TotalOriginal - s.TotalOutstanding) / s.TotalOriginal * 100
	}

	return s
}
