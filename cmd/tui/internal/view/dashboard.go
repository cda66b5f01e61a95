package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/report"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// topCategories bounds the expense breakdown shown under the monthly report.
const topCategories = 5

// DashboardModel shows overall totals next to a month's report. Opening it
// materializes the month's recurring transactions.
type DashboardModel struct {
	CommonModel
	reportService *report.Service

	month     time.Time
	dashboard report.Dashboard
	monthly   report.Monthly

	loading bool
	err     error
}

func NewDashboardModel(svc *report.Service) DashboardModel {
	return DashboardModel{
		reportService: svc,
		month:         transaction.MonthStart(time.Now()),
		loading:       true,
	}
}

func (m DashboardModel) Title() string { return "Dashboard" }

func (m DashboardModel) ShortHelp() string {
	return "←/→: change month | r: refresh | Esc: back"
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.dashboard = msg.dashboard
			m.monthly = msg.monthly
		}

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "left", "h":
			m.month = m.month.AddDate(0, -1, 0)
			m.loading = true

			return m, m.loadCmd()
		case "right", "l":
			m.month = m.month.AddDate(0, 1, 0)
			m.loading = true

			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	box := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Width(40)

	d := m.dashboard
	overall := box.Render(strings.Join([]string{
		headerStyle.Render("All Time"),
		"Income:         " + FormatAmount(d.Income),
		"Expenses:       " + FormatAmount(d.Expenses),
		"Investments:    " + FormatAmount(d.Investments),
		"Net:            " + FormatAmount(d.Net),
		"Available cash: " + FormatAmount(d.AvailableCash),
	}, "\n"))

	mo := m.monthly
	lines := []string{
		headerStyle.Render(mo.Month.Format("January 2006")),
		fmt.Sprintf("Income:      %s (%s)", FormatAmount(mo.Totals.Income), FormatPercent(mo.Change.Income)),
		fmt.Sprintf("Expenses:    %s (%s)", FormatAmount(mo.Totals.Expenses), FormatPercent(mo.Change.Expenses)),
		fmt.Sprintf("Investments: %s (%s)", FormatAmount(mo.Totals.Investments), FormatPercent(mo.Change.Investments)),
		fmt.Sprintf("Savings rate: %s", FormatPercent(mo.SavingsRate)),
		"",
		"Top expenses:",
	}

	for i, c := range mo.ExpenseBreakdown {
		if i == topCategories {
			break
		}

		lines = append(lines, fmt.Sprintf("  %-18s %12s  %s", c.Category, FormatAmount(c.Amount), FormatPercent(c.Share)))
	}

	monthly := box.Render(strings.Join(lines, "\n"))

	recent := []string{headerStyle.Render("Recent Transactions")}
	for _, tx := range d.Recent {
		recent = append(recent, fmt.Sprintf("%s  %-12s %-18s %12s",
			FormatDate(tx.Date), tx.Type, tx.Category, FormatSigned(tx.Type, tx.Amount)))
	}

	return lipgloss.NewStyle().Padding(1).Render(lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, overall, " ", monthly),
		"",
		strings.Join(recent, "\n"),
		"",
		lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()),
	))
}

type dashboardMsg struct {
	dashboard report.Dashboard
	monthly   report.Monthly
	err       error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	month := m.month

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		d, err := m.reportService.Dashboard(ctx, time.Now())
		if err != nil {
			return dashboardMsg{err: err}
		}

		mo, err := m.reportService.Monthly(ctx, month)
		if err != nil {
			return dashboardMsg{err: err}
		}

		return dashboardMsg{dashboard: d, monthly: mo}
	}
}
