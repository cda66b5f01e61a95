package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// Period is a reporting window the user can pick before listing or exporting.
type Period int

const (
	PeriodThisMonth Period = iota
	PeriodLastMonth
	PeriodLastThreeMonths
	PeriodThisYear
	PeriodLastYear
	PeriodAll
	PeriodCustom
)

var periodLabels = [...]string{
	PeriodThisMonth:       "This month",
	PeriodLastMonth:       "Last month",
	PeriodLastThreeMonths: "Last 3 months",
	PeriodThisYear:        "This year",
	PeriodLastYear:        "Last year",
	PeriodAll:             "All time",
	PeriodCustom:          "Custom range",
}

func (p Period) String() string {
	if p < 0 || int(p) >= len(periodLabels) {
		return "Unknown"
	}

	return periodLabels[p]
}

// Range resolves p against now as inclusive UTC dates. PeriodAll and
// PeriodCustom have no fixed range and return zero times.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	month := transaction.MonthStart(today)

	switch p {
	case PeriodThisMonth:
		return month, today
	case PeriodLastMonth:
		prev := month.AddDate(0, -1, 0)
		return prev, transaction.MonthEnd(prev)
	case PeriodLastThreeMonths:
		return month.AddDate(0, -2, 0), today
	case PeriodThisYear:
		return time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC), today
	case PeriodLastYear:
		y := today.Year() - 1
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
	}

	return time.Time{}, time.Time{}
}

// PeriodSelectedMsg carries the window the user settled on.
type PeriodSelectedMsg struct {
	Period Period
	Start  time.Time
	End    time.Time
}

// Filter narrows a transaction listing to the selected window.
func (msg PeriodSelectedMsg) Filter() transaction.ListFilter {
	if msg.Period == PeriodAll {
		return transaction.ListFilter{}
	}

	start, end := msg.Start, msg.End

	return transaction.ListFilter{StartDate: &start, EndDate: &end}
}

// Label describes the window for headers.
func (msg PeriodSelectedMsg) Label() string {
	if msg.Period == PeriodAll {
		return msg.Period.String()
	}

	return FormatDate(msg.Start) + " to " + FormatDate(msg.End)
}

var errEndBeforeStart = errors.New("end date is before start date")

func validDate(s string) error {
	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(s)); err != nil {
		return errors.New("use YYYY-MM-DD")
	}

	return nil
}

// PeriodPicker lists the preset windows and falls back to a form for a
// custom range.
type PeriodPicker struct {
	initial Period
	cursor  Period

	// custom is non-nil while a custom range is being entered.
	custom *huh.Form
	err    error
}

func NewPeriodPicker(initial Period) PeriodPicker {
	return PeriodPicker{initial: initial, cursor: initial}
}

// Choosing reports whether the preset list is showing, so Esc belongs to the caller.
func (p PeriodPicker) Choosing() bool {
	return p.custom == nil
}

func (p *PeriodPicker) Reset() {
	p.cursor = p.initial
	p.custom = nil
	p.err = nil
}

func (p PeriodPicker) Update(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if p.custom != nil {
		return p.updateCustom(msg)
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch key.String() {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < PeriodCustom {
			p.cursor++
		}
	case "enter":
		if p.cursor == PeriodCustom {
			p.custom = customRangeForm()
			return p, p.custom.Init()
		}

		start, end := p.cursor.Range(time.Now())
		selected := PeriodSelectedMsg{Period: p.cursor, Start: start, End: end}

		return p, func() tea.Msg { return selected }
	}

	return p, nil
}

func (p PeriodPicker) updateCustom(msg tea.Msg) (PeriodPicker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		p.custom = nil
		return p, nil
	}

	form, cmd := p.custom.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		p.custom = f
	}

	if p.custom.State != huh.StateCompleted {
		return p, cmd
	}

	// Both inputs were validated by the form.
	start, _ := time.Parse(time.DateOnly, strings.TrimSpace(p.custom.GetString("from")))
	end, _ := time.Parse(time.DateOnly, strings.TrimSpace(p.custom.GetString("to")))
	p.custom = nil

	if end.Before(start) {
		p.err = errEndBeforeStart
		return p, nil
	}

	p.err = nil
	selected := PeriodSelectedMsg{Period: PeriodCustom, Start: start, End: end}

	return p, func() tea.Msg { return selected }
}

func customRangeForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Key("from").Title("From").Placeholder("YYYY-MM-DD").Validate(validDate),
			huh.NewInput().Key("to").Title("To").Placeholder("YYYY-MM-DD").Validate(validDate),
		),
	).WithWidth(40).WithShowHelp(false)
}

func (p PeriodPicker) View() string {
	if p.custom != nil {
		return headerStyle.Render("Custom range") + "\n\n" + p.custom.View()
	}

	now := time.Now()
	faint := lipgloss.NewStyle().Faint(true)

	var b strings.Builder

	b.WriteString(headerStyle.Render("Period") + "\n\n")

	for i := range PeriodCustom + 1 {
		cursor := "  "
		if i == p.cursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%-14s", cursor, i)
		if i != PeriodAll && i != PeriodCustom {
			start, end := i.Range(now)
			line += faint.Render(FormatDate(start) + " to " + FormatDate(end))
		}

		b.WriteString(line + "\n")
	}

	if p.err != nil {
		b.WriteString("\n" + errorStyle.Render("Error: "+p.err.Error()) + "\n")
	}

	return b.String()
}
