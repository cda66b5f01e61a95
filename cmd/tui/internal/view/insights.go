package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/insight"
)

var priorityColors = map[insight.Priority]lipgloss.Color{
	insight.PriorityHigh:   lipgloss.Color("196"),
	insight.PriorityMedium: lipgloss.Color("214"),
	insight.PriorityLow:    lipgloss.Color("46"),
}

type InsightsModel struct {
	CommonModel
	insightService *insight.Service

	suggestions []insight.Suggestion
	loading     bool
	err         error
}

func NewInsightsModel(svc *insight.Service) InsightsModel {
	return InsightsModel{insightService: svc, loading: true}
}

func (m InsightsModel) Title() string     { return "Spending Insights" }
func (m InsightsModel) ShortHelp() string { return "r: refresh | Esc: back" }

func (m InsightsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m InsightsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case insightsMsg:
		m.loading = false
		m.suggestions, m.err = msg.suggestions, msg.err

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m InsightsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Analyzing spending...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	var (
		b       strings.Builder
		savings float64
	)

	for _, s := range m.suggestions {
		savings += s.PotentialSavings

		tag := lipgloss.NewStyle().Foreground(priorityColors[s.Priority]).Render(fmt.Sprintf("[%s]", s.Priority))
		fmt.Fprintf(&b, "%s %s\n", tag, s.Text)

		if s.PotentialSavings > 0 {
			fmt.Fprintf(&b, "    %s", lipgloss.NewStyle().Faint(true).Render("Potential savings: "+FormatAmount(s.PotentialSavings)))
			b.WriteString("\n")
		}

		b.WriteString("\n")
	}

	header := headerStyle.Render(fmt.Sprintf("%d suggestions, up to %s a month", len(m.suggestions), FormatAmount(savings)))

	return lipgloss.NewStyle().Padding(1).Render(header + "\n\n" + b.String() + m.ShortHelp())
}

type insightsMsg struct {
	suggestions []insight.Suggestion
	err         error
}

func (m InsightsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		s, err := m.insightService.ExpenseSuggestions(ctx, time.Now())

		return insightsMsg{suggestions: s, err: err}
	}
}
