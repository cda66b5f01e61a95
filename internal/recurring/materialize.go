package recurring

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// Materialize returns the transactions active rules still owe for now's
// calendar month. A rule is considered settled once existing holds any
// transaction tagged with its ID in that month, so feeding the output back in
// as existing yields nothing new.
func Materialize(rules []*Rule, existing []*transaction.Transaction, now time.Time) []transaction.CreateParams {
	generated := make(map[uuid.UUID]bool)

	for _, tx := range existing {
		if tx.RecurringID != nil && transaction.SameMonth(tx.Date, now) {
			generated[*tx.RecurringID] = true
		}
	}

	monthEnd := transaction.MonthEnd(now)

	var out []transaction.CreateParams

	for _, r := range rules {
		if !r.IsActive || generated[r.ID] {
			continue
		}

		if !r.StartDate.IsZero() && dateOnly(r.StartDate, now.Location()).After(monthEnd) {
			continue
		}

		out = append(out, transaction.CreateParams{
			Date:         TargetDate(r, now),
			Type:         r.Type,
			Category:     r.Category,
			Amount:       r.Amount,
			Description:  r.Name + " (Recurring)",
			IsRecurring:  true,
			RecurringID:  new(r.ID),
			Acknowledged: r.AutoAcknowledge,
		})

		generated[r.ID] = true
	}

	return out
}

// TargetDate picks the day within now's month on which r falls due. When the
// recurrence yields no day in the month, today is used.
func TargetDate(r *Rule, now time.Time) time.Time {
	today := dateOnly(now, now.Location())
	first := transaction.MonthStart(today)
	last := transaction.MonthEnd(today)

	switch r.Recurrence.Type {
	case Monthly:
		day := r.Recurrence.DayOfMonth
		if day < 1 {
			return today
		}

		if day > last.Day() {
			day = last.Day()
		}

		return first.AddDate(0, 0, day-1)

	case Weekly:
		if r.Recurrence.DayOfWeek == nil {
			return today
		}

		want := time.Weekday(*r.Recurrence.DayOfWeek % 7)
		offset := (int(want) - int(first.Weekday()) + 7) % 7

		return first.AddDate(0, 0, offset)

	case Custom:
		step := r.Recurrence.IntervalDays
		if step < 1 || r.StartDate.IsZero() {
			return today
		}

		d := dateOnly(r.StartDate, now.Location())
		if d.Before(first) {
			behind := int(math.Round(first.Sub(d).Hours() / 24))
			periods := (behind + step - 1) / step
			d = d.AddDate(0, 0, periods*step)
		}

		if d.After(last) {
			return today
		}

		return d
	}

	return today
}

// dateOnly keeps t's calendar date and moves it to midnight in loc.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
