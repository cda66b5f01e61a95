package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/matching"
	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// ReviewModel walks through unacknowledged transactions one at a time,
// confirming or correcting their category before acknowledging them.
type ReviewModel struct {
	CommonModel
	txService        *transaction.Service
	matchingService  *matching.Service
	recurringService *recurring.Service

	queue     []*transaction.Transaction
	currentTx *transaction.Transaction

	categoryInput textinput.Model

	status     string
	loading    bool
	totalCount int
}

func NewReviewModel(txSvc *transaction.Service, matchSvc *matching.Service, recurringSvc *recurring.Service) ReviewModel {
	ti := textinput.New()
	ti.Placeholder = "Category"
	ti.Width = 40

	return ReviewModel{
		txService:        txSvc,
		matchingService:  matchSvc,
		recurringService: recurringSvc,
		categoryInput:    ti,
		loading:          true,
	}
}

func (m ReviewModel) Title() string { return "Review Pending" }

func (m ReviewModel) ShortHelp() string {
	return "Enter: acknowledge & next | Ctrl+N: skip | Esc: back"
}

func (m ReviewModel) Init() tea.Cmd {
	return m.loadPendingCmd()
}

func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, Back
		case "ctrl+n":
			if m.currentTx != nil {
				m.nextTx()
				return m, textinput.Blink
			}
		case "enter":
			if m.currentTx != nil && strings.TrimSpace(m.categoryInput.Value()) != "" {
				return m, m.saveAndNextCmd(strings.TrimSpace(m.categoryInput.Value()))
			}
		}

	case loadPendingMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error loading transactions: %v", msg.err)
			return m, nil
		}

		m.queue = msg.txs
		m.totalCount = len(m.queue)

		if len(m.queue) == 0 {
			m.status = "Nothing to review."
			return m, nil
		}

		m.nextTx()

		return m, textinput.Blink

	case reviewSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			return m, nil
		}

		m.nextTx()

		return m, textinput.Blink
	}

	var cmd tea.Cmd
	if m.currentTx != nil {
		m.categoryInput, cmd = m.categoryInput.Update(msg)
	}

	return m, cmd
}

func (m *ReviewModel) nextTx() {
	if len(m.queue) == 0 {
		m.currentTx = nil
		m.status = "All done! Nothing left to review."
		m.categoryInput.Blur()
		m.categoryInput.SetValue("")

		return
	}

	m.currentTx = m.queue[0]
	m.queue = m.queue[1:]

	m.status = fmt.Sprintf("Reviewing %d/%d", m.totalCount-len(m.queue), m.totalCount)
	m.categoryInput.Focus()

	category := m.currentTx.Category

	if m.currentTx.Description != "" {
		ctx, cancel := DbCtx()
		defer cancel()

		if s, _ := m.matchingService.Suggest(ctx, m.currentTx.Description); s != "" {
			category = s
		}
	}

	m.categoryInput.SetValue(category)
}

func (m ReviewModel) View() string {
	var content string

	switch {
	case m.loading:
		content = "Loading pending transactions..."
	case m.currentTx != nil:
		info := fmt.Sprintf(
			"Date:        %s\nType:        %s\nAmount:      %s\nDescription: %s\n",
			FormatDate(m.currentTx.Date),
			m.currentTx.Type,
			FormatAmount(m.currentTx.Amount),
			m.currentTx.Description,
		)

		if m.currentTx.IsRecurring {
			info += lipgloss.NewStyle().Faint(true).Render("Generated from a recurring rule") + "\n"
		}

		content = fmt.Sprintf("%s\n\n%s\nCategory:\n%s\n\n(%s)",
			headerStyle.Render(m.status), info, m.categoryInput.View(), m.ShortHelp())
	default:
		content = m.status + "\n\n(Esc to back)"
	}

	return lipgloss.NewStyle().Padding(2).Render(content)
}

type loadPendingMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m ReviewModel) loadPendingCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, transaction.ListFilter{Acknowledged: new(false)})

		return loadPendingMsg{txs: txs, err: err}
	}
}

type reviewSaveMsg struct {
	err error
}

func (m ReviewModel) saveAndNextCmd(category string) tea.Cmd {
	tx := *m.currentTx

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if tx.Description != "" {
			_ = m.matchingService.Learn(ctx, tx.Description, category)
		}

		if tx.Category != category {
			tx.Category = category
			if err := m.txService.Update(ctx, &tx); err != nil {
				return reviewSaveMsg{err: err}
			}
		}

		return reviewSaveMsg{err: acknowledge(ctx, m.txService, m.recurringService, tx.ID)}
	}
}
