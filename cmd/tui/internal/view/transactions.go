package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/matching"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type entryState int

const (
	entryStateDetails entryState = iota
	entryStateCategory
	entryStateSaving
	entryStateDone
)

// txDraft is held by pointer so the form bindings outlive model copies.
type txDraft struct {
	date        string
	txType      transaction.Type
	amount      string
	description string
	category    string
	ack         bool
}

func (d *txDraft) params() (transaction.CreateParams, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(d.date))
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("parsing date: %w", err)
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(d.amount), 64)
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("parsing amount: %w", err)
	}

	return transaction.CreateParams{
		Date:         date,
		Type:         d.txType,
		Category:     strings.TrimSpace(d.category),
		Amount:       amount,
		Description:  strings.TrimSpace(d.description),
		Acknowledged: d.ack,
	}, nil
}

// TransactionsModel records a transaction by hand. The category is prefilled
// from the learned mappings and the final choice is learned back.
type TransactionsModel struct {
	CommonModel
	txService       *transaction.Service
	matchingService *matching.Service

	state entryState
	draft *txDraft
	form  *huh.Form
	saved *transaction.Transaction
	err   error
}

func NewTransactionsModel(txSvc *transaction.Service, matchSvc *matching.Service) TransactionsModel {
	m := TransactionsModel{txService: txSvc, matchingService: matchSvc}
	return m.reset()
}

func (m TransactionsModel) reset() TransactionsModel {
	m.draft = &txDraft{date: FormatDate(time.Now()), txType: transaction.TypeExpense}
	m.form = detailsForm(m.draft)
	m.state = entryStateDetails
	m.saved = nil
	m.err = nil

	return m
}

func (m TransactionsModel) Title() string { return "New Transaction" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case entryStateCategory:
		return "Esc: edit details | Enter: save"
	case entryStateSaving:
		return "Saving..."
	case entryStateDone:
		return "n: add another | Esc: back"
	}

	return "Esc: back | Enter/Tab: next field"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case suggestionMsg:
		if m.draft.category == "" {
			m.draft.category = msg.category
		}

		m.form = categoryForm(m.draft)
		m.state = entryStateCategory

		return m, m.form.Init()

	case savedTxMsg:
		m.state = entryStateDone
		m.saved, m.err = msg.tx, msg.err

		return m, nil

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	if m.state != entryStateDetails && m.state != entryStateCategory {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == entryStateDetails {
		return m, m.suggestCmd(m.draft.description)
	}

	m.state = entryStateSaving

	return m, m.saveCmd()
}

func (m TransactionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch m.state {
	case entryStateDetails:
		if msg.Type == tea.KeyEsc {
			return m, Back, true
		}
	case entryStateCategory:
		if msg.Type == tea.KeyEsc {
			m.form = detailsForm(m.draft)
			m.state = entryStateDetails

			return m, m.form.Init(), true
		}
	case entryStateDone:
		switch msg.String() {
		case "esc":
			return m, Back, true
		case "n":
			m = m.reset()
			return m, m.form.Init(), true
		}

		return m, nil, true
	}

	return m, nil, false
}

func detailsForm(d *txDraft) *huh.Form {
	return huh.NewForm(detailsGroup(d)).WithWidth(50).WithShowHelp(false)
}

func categoryForm(d *txDraft) *huh.Form {
	return huh.NewForm(categoryGroup(d)).WithWidth(50).WithShowHelp(false)
}

func detailsGroup(d *txDraft) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Date").
			Placeholder("YYYY-MM-DD").
			Value(&d.date).
			Validate(validDate),

		huh.NewSelect[transaction.Type]().
			Title("Type").
			Options(
				huh.NewOption("Expense", transaction.TypeExpense),
				huh.NewOption("Income", transaction.TypeIncome),
				huh.NewOption("Investment", transaction.TypeInvestment),
			).
			Value(&d.txType),

		huh.NewInput().
			Title("Amount").
			Value(&d.amount).
			Validate(func(s string) error {
				v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
				if err != nil || v <= 0 {
					return errors.New("amount must be a positive number")
				}

				return nil
			}),

		huh.NewInput().
			Title("Description").
			Value(&d.description),
	)
}

func categoryGroup(d *txDraft) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Category").
			Value(&d.category).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("category cannot be empty")
				}

				return nil
			}),

		huh.NewConfirm().
			Title("Acknowledged?").
			Affirmative("Yes").
			Negative("No").
			Value(&d.ack),
	)
}

func (m TransactionsModel) View() string {
	pad := lipgloss.NewStyle().Padding(1)

	switch m.state {
	case entryStateDetails:
		return pad.Render(headerStyle.Render("New transaction") + "\n\n" + m.form.View())

	case entryStateCategory:
		return pad.Render(m.draftView() + "\n" + m.form.View())

	case entryStateSaving:
		return pad.Render("Saving transaction...")

	case entryStateDone:
		if m.err != nil {
			return pad.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}

		return pad.Render(successStyle.Render(fmt.Sprintf("Saved %s %s in %s on %s.",
			m.saved.Type, FormatSigned(m.saved.Type, m.saved.Amount), m.saved.Category, FormatDate(m.saved.Date))))
	}

	return ""
}

func (m TransactionsModel) draftView() string {
	d := m.draft

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(fmt.Sprintf("%s  |  %s  |  %s  |  %s", d.date, d.txType, d.amount, d.description))
}

type suggestionMsg struct {
	category string
}

func (m TransactionsModel) suggestCmd(description string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(description) == "" {
			return suggestionMsg{}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		// A failed lookup only means the category starts empty.
		category, _ := m.matchingService.Suggest(ctx, description)

		return suggestionMsg{category: category}
	}
}

type savedTxMsg struct {
	tx  *transaction.Transaction
	err error
}

func (m TransactionsModel) saveCmd() tea.Cmd {
	params, err := m.draft.params()

	return func() tea.Msg {
		if err != nil {
			return savedTxMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		tx, err := m.txService.Create(ctx, params)
		if err != nil {
			return savedTxMsg{err: err}
		}

		if tx.Description != "" {
			if err := m.matchingService.Learn(ctx, tx.Description, tx.Category); err != nil {
				return savedTxMsg{tx: tx, err: fmt.Errorf("saved, but learning the category failed: %w", err)}
			}
		}

		return savedTxMsg{tx: tx}
	}
}
