package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
)

var actionColors = map[stock.Action]lipgloss.Color{
	stock.Buy:  lipgloss.Color("46"),
	stock.Hold: lipgloss.Color("214"),
	stock.Sell: lipgloss.Color("196"),
}

// StocksModel browses the scored catalog. Scores are computed once when the
// view opens.
type StocksModel struct {
	CommonModel
	catalog *stock.Catalog

	table    table.Model
	stocks   []stock.Stock
	selected *stock.Stock
}

func NewStocksModel(catalog *stock.Catalog) StocksModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Ticker", Width: 12},
			{Title: "Company", Width: 26},
			{Title: "Price", Width: 12},
			{Title: "Change", Width: 8},
			{Title: "Action", Width: 6},
			{Title: "Conf.", Width: 6},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	m := StocksModel{catalog: catalog, table: t}
	m.stocks = catalog.Stocks(time.Now())
	m.refreshTable()

	return m
}

func (m StocksModel) Title() string     { return "Stock Recommendations" }
func (m StocksModel) ShortHelp() string { return "Enter: details | Esc: back" }

func (m StocksModel) Init() tea.Cmd {
	return nil
}

func (m StocksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			if m.selected != nil {
				m.selected = nil
				return m, nil
			}

			return m, Back
		case "enter":
			idx := m.table.Cursor()
			if idx >= 0 && idx < len(m.stocks) {
				m.selected = &m.stocks[idx]
			}

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *StocksModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.stocks))

	for _, s := range m.stocks {
		rows = append(rows, table.Row{
			s.Ticker,
			s.Company,
			FormatAmount(s.CurrentPrice),
			FormatPercent(s.PriceChange),
			strings.ToUpper(string(s.Recommendation.Action)),
			fmt.Sprintf("%d%%", s.Recommendation.Confidence),
		})
	}

	m.table.SetRows(rows)
}

func (m StocksModel) View() string {
	content := m.table.View()

	if m.selected != nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "  ", m.detailView(*m.selected))
	}

	return lipgloss.NewStyle().Padding(1).Render(content + "\n\n" + lipgloss.NewStyle().Faint(true).Render(m.ShortHelp()))
}

func (m StocksModel) detailView(s stock.Stock) string {
	f, t, r := s.Fundamentals, s.Technicals, s.Recommendation

	action := lipgloss.NewStyle().Bold(true).Foreground(actionColors[r.Action]).Render(strings.ToUpper(string(r.Action)))

	lines := []string{
		headerStyle.Render(fmt.Sprintf("%s  %s", s.Ticker, s.Company)),
		fmt.Sprintf("%s | market cap %s (%s)", s.Sector, humanize.SIWithDigits(s.MarketCap, 1, ""), f.MarketCapTier),
		fmt.Sprintf("52w range: %s - %s", FormatAmount(s.Week52Low), FormatAmount(s.Week52High)),
		"",
		fmt.Sprintf("%s with %d%% confidence (score %.1f)", action, r.Confidence, r.Score),
		r.Reasoning,
		"",
		fmt.Sprintf("Fundamentals %.0f/100", f.Score),
		fmt.Sprintf("  size %s, valuation %s (%.0f%% of average)", f.Size, f.Valuation, f.CurrentVsAverage),
		fmt.Sprintf("  too big to fail %d/10: %s", f.TooBigToFailScore, f.TooBigToFailNote),
		fmt.Sprintf("  5y return %s, consistency %s, resilience %s", FormatPercent(f.Return5Y), f.Consistency, f.Resilience),
		fmt.Sprintf("  trust %s", f.TrustScore),
		fmt.Sprintf("Technicals %.0f/100", t.Score),
		fmt.Sprintf("  SMA50 %s, SMA200 %s, RSI %.1f", FormatAmount(t.SMA50), FormatAmount(t.SMA200), t.RSI),
		fmt.Sprintf("  MACD %.2f, signal %.2f", t.MACD.Value, t.MACD.Signal),
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Width(60).
		Render(strings.Join(lines, "\n"))
}
