package view

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// RecurringModel lists the recurring rules and generates this month's due
// transactions on demand.
type RecurringModel struct {
	CommonModel
	recurringService *recurring.Service

	table     table.Model
	rules     []*recurring.Rule
	generated []*transaction.Transaction
	ran       bool

	loading bool
	err     error
}

func NewRecurringModel(svc *recurring.Service) RecurringModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 20},
			{Title: "Type", Width: 10},
			{Title: "Category", Width: 16},
			{Title: "Amount", Width: 12},
			{Title: "Repeats", Width: 14},
			{Title: "Due", Width: 10},
			{Title: "Last run", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return RecurringModel{recurringService: svc, table: t, loading: true}
}

func (m RecurringModel) Title() string { return "Recurring Rules" }

func (m RecurringModel) ShortHelp() string {
	return "g: generate due transactions | r: refresh | Esc: back"
}

func (m RecurringModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RecurringModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case rulesMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.rules = msg.rules
			m.refreshTable(time.Now())
		}

		return m, nil

	case generatedMsg:
		m.err = msg.err

		if msg.err == nil {
			m.generated, m.ran = msg.txs, true
		}

		return m, m.loadCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "g":
			return m, m.generateCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func describeRecurrence(r recurring.Recurrence) string {
	switch r.Type {
	case recurring.Monthly:
		return "monthly, day " + strconv.Itoa(r.DayOfMonth)
	case recurring.Weekly:
		if r.DayOfWeek != nil {
			return "weekly, " + time.Weekday(*r.DayOfWeek).String()[:3]
		}

		return "weekly"
	case recurring.Custom:
		return fmt.Sprintf("every %d days", r.IntervalDays)
	}

	return string(r.Type)
}

func (m *RecurringModel) refreshTable(now time.Time) {
	rows := make([]table.Row, 0, len(m.rules))

	for _, r := range m.rules {
		due := "-"
		if r.IsActive {
			due = FormatDate(recurring.TargetDate(r, now))
		}

		last := "never"
		if r.LastGenerated != nil {
			last = FormatDate(*r.LastGenerated)
		}

		rows = append(rows, table.Row{
			r.Name, string(r.Type), r.Category, FormatAmount(r.Amount), describeRecurrence(r.Recurrence), due, last,
		})
	}

	m.table.SetRows(rows)
}

func (m RecurringModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading recurring rules...")
	}

	out := m.table.View()

	if m.err != nil {
		out += "\n\n" + errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	if m.ran {
		out += "\n\n" + m.generatedView()
	}

	return lipgloss.NewStyle().Padding(1).Render(out)
}

func (m RecurringModel) generatedView() string {
	if len(m.generated) == 0 {
		return successStyle.Render("Nothing due; every active rule already has this month's transaction.")
	}

	s := successStyle.Render(fmt.Sprintf("Generated %d transaction(s):", len(m.generated)))
	for _, tx := range m.generated {
		s += fmt.Sprintf("\n  %s  %-16s %s", FormatDate(tx.Date), tx.Category, FormatSigned(tx.Type, tx.Amount))
	}

	return s
}

type rulesMsg struct {
	rules []*recurring.Rule
	err   error
}

func (m RecurringModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rules, err := m.recurringService.List(ctx)

		return rulesMsg{rules: rules, err: err}
	}
}

type generatedMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m RecurringModel) generateCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.recurringService.Generate(ctx, time.Now())

		return generatedMsg{txs: txs, err: err}
	}
}
