package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
)

type LiabilitiesModel struct {
	CommonModel
	liabilityService *liability.Service

	table      table.Model
	items      []*liability.Liability
	summary    liability.Summary
	projection *liability.Projection

	loading bool
	err     error
}

func NewLiabilitiesModel(svc *liability.Service) LiabilitiesModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 22},
			{Title: "Type", Width: 14},
			{Title: "Outstanding", Width: 14},
			{Title: "Rate", Width: 7},
			{Title: "EMI", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	return LiabilitiesModel{liabilityService: svc, table: t, loading: true}
}

func (m LiabilitiesModel) Title() string { return "Liabilities" }

func (m LiabilitiesModel) ShortHelp() string {
	return "Enter: project payoff | r: refresh | Esc: back"
}

func (m LiabilitiesModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m LiabilitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case liabilitiesMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.items = msg.items
			m.summary = msg.summary
			m.refreshTable()
		}

		return m, nil

	case projectionMsg:
		m.err = msg.err
		if msg.err == nil {
			m.projection = &msg.projection
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if m.projection != nil {
				m.projection = nil
				return m, nil
			}

			return m, Back
		case "r":
			m.loading = true
			m.projection = nil

			return m, m.loadCmd()
		case "enter":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.items) {
				return m, m.projectCmd(m.items[idx])
			}
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *LiabilitiesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.items))

	for _, l := range m.items {
		emi := "-"
		if l.EMI != nil {
			emi = FormatAmount(*l.EMI)
		}

		rows = append(rows, table.Row{l.Name, l.Type, FormatAmount(l.OutstandingAmount), FormatPercent(l.InterestRate), emi})
	}

	m.table.SetRows(rows)
}

func (m LiabilitiesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading liabilities...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	s := m.summary
	header := fmt.Sprintf("%d liabilities | Outstanding %s of %s | EMI %s/month | Repaid %s",
		s.Count, FormatAmount(s.TotalOutstanding), FormatAmount(s.TotalOriginal),
		FormatAmount(s.TotalEMI), FormatPercent(s.RepaymentProgress))

	content := lipgloss.JoinVertical(lipgloss.Left, headerStyle.Render(header), "", m.table.View())

	if m.projection != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.projectionView())
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m LiabilitiesModel) projectionView() string {
	p := m.projection

	var b strings.Builder

	switch {
	case p.MonthsToClose == liability.NonAmortizing:
		b.WriteString(errorStyle.Render("The EMI does not cover the monthly interest."))
		b.WriteString("\n\n")
	case p.MonthsToClose > 0:
		fmt.Fprintf(&b, "Closes in %d months", p.MonthsToClose)

		if p.ClosureDate != nil {
			fmt.Fprintf(&b, " (%s, %s)", p.ClosureDate.Format("Jan 2006"), humanize.Time(*p.ClosureDate))
		}

		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Total interest: %s\nTotal cost:     %s\n\n", FormatAmount(p.TotalInterest), FormatAmount(p.TotalCost))

	for _, c := range p.Checkpoints {
		fmt.Fprintf(&b, "%-10s %14s %14s\n", c.PeriodLabel, FormatAmount(c.Balance), FormatAmount(c.CumulativeInterest))
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(b.String())
}

type liabilitiesMsg struct {
	items   []*liability.Liability
	summary liability.Summary
	err     error
}

func (m LiabilitiesModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		items, err := m.liabilityService.List(ctx)
		if err != nil {
			return liabilitiesMsg{err: err}
		}

		return liabilitiesMsg{items: items, summary: liability.Summarize(items)}
	}
}

type projectionMsg struct {
	projection liability.Projection
	err        error
}

func (m LiabilitiesModel) projectCmd(l *liability.Liability) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, p, err := m.liabilityService.Projection(ctx, l.ID, time.Now())

		return projectionMsg{projection: p, err: err}
	}
}
