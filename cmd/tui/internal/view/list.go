package view

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type listMode int

const (
	listModeBrowse listMode = iota
	listModePeriod
	listModeEdit
	listModeDelete
)

var typeFilters = []*transaction.Type{
	nil,
	new(transaction.TypeIncome),
	new(transaction.TypeExpense),
	new(transaction.TypeInvestment),
}

// ListModel browses stored transactions with type, period and pending
// filters, and edits, acknowledges or deletes the selected row.
type ListModel struct {
	CommonModel
	txService        *transaction.Service
	recurringService *recurring.Service

	mode  listMode
	table table.Model
	txs   []*transaction.Transaction

	typeIdx     int
	pendingOnly bool
	period      PeriodSelectedMsg
	picker      PeriodPicker

	form  *huh.Form
	draft *txDraft

	loading bool
	err     error
	status  string
}

func NewListModel(txSvc *transaction.Service, recurringSvc *recurring.Service) ListModel {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Date", Width: 12},
			{Title: "Type", Width: 11},
			{Title: "Category", Width: 18},
			{Title: "Amount", Width: 14},
			{Title: "Description", Width: 32},
			{Title: "Ack", Width: 4},
		}),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		txService:        txSvc,
		recurringService: recurringSvc,
		table:            t,
		period:           PeriodSelectedMsg{Period: PeriodAll},
		picker:           NewPeriodPicker(PeriodThisMonth),
		loading:          true,
	}
}

func (m ListModel) Title() string { return "Transactions" }

func (m ListModel) ShortHelp() string {
	switch m.mode {
	case listModePeriod:
		return "Enter: apply | Esc: cancel"
	case listModeEdit:
		return "Navigate form | Esc: cancel"
	case listModeDelete:
		return "y: delete | n: keep"
	}

	return "e: edit | a: acknowledge | x: delete | t: type | d: period | p: pending only | r: refresh | Esc: back"
}

func (m ListModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m ListModel) filter() transaction.ListFilter {
	f := m.period.Filter()
	f.Type = typeFilters[m.typeIdx]
	f.Newest = true

	if m.pendingOnly {
		f.Acknowledged = new(false)
	}

	return f
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listLoadedMsg:
		m.loading = false
		m.err = msg.err

		if msg.err == nil {
			m.txs = msg.txs
			m.refreshTable()
		}

		return m, nil

	case listChangedMsg:
		m.status = msg.status
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		}

		m.mode = listModeBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case PeriodSelectedMsg:
		m.period = msg
		m.mode = listModeBrowse
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.mode {
	case listModePeriod:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc && m.picker.Choosing() {
			m.mode = listModeBrowse
			m.table.Focus()

			return m, nil
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd

	case listModeEdit:
		return m.updateEdit(msg)

	case listModeDelete:
		return m.updateDelete(msg)
	}

	return m.updateBrowse(msg)
}

func (m ListModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "e":
			return m.startEdit()
		case "a":
			return m, m.acknowledgeCmd()
		case "x":
			if m.selected() != nil {
				m.mode = listModeDelete
			}

			return m, nil
		case "t":
			m.typeIdx = (m.typeIdx + 1) % len(typeFilters)
			return m, m.loadCmd()
		case "p":
			m.pendingOnly = !m.pendingOnly
			return m, m.loadCmd()
		case "d":
			m.picker.Reset()
			m.mode = listModePeriod
			m.table.Blur()

			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) selected() *transaction.Transaction {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	return m.txs[idx]
}

func (m ListModel) startEdit() (tea.Model, tea.Cmd) {
	tx := m.selected()
	if tx == nil {
		return m, nil
	}

	m.draft = &txDraft{
		date:        FormatDate(tx.Date),
		txType:      tx.Type,
		amount:      strconv.FormatFloat(tx.Amount, 'f', 2, 64),
		description: tx.Description,
		category:    tx.Category,
		ack:         tx.Acknowledged,
	}
	m.form = huh.NewForm(detailsGroup(m.draft), categoryGroup(m.draft)).WithWidth(45).WithShowHelp(false)
	m.mode = listModeEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m ListModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.mode = listModeBrowse
		m.form = nil
		m.table.Focus()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m ListModel) updateDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y":
		return m, m.deleteCmd()
	case "n", "esc":
		m.mode = listModeBrowse
	}

	return m, nil
}

var typeLabels = []string{"All", "Income", "Expense", "Investment"}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
	}

	if m.mode == listModePeriod {
		return lipgloss.NewStyle().Padding(1).Render(m.picker.View())
	}

	pending := "off"
	if m.pendingOnly {
		pending = "on"
	}

	header := fmt.Sprintf("[t] Type: %s | [d] Period: %s | [p] Pending only: %s",
		activeStyle(typeLabels[m.typeIdx]), activeStyle(m.period.Label()), activeStyle(pending))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
		m.totalsLine(),
	)

	switch m.mode {
	case listModeEdit:
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Edit transaction\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	case listModeDelete:
		if tx := m.selected(); tx != nil {
			content += "\n\n" + errorStyle.Render(fmt.Sprintf("Delete %s %s on %s? (y/n)",
				tx.Category, FormatSigned(tx.Type, tx.Amount), FormatDate(tx.Date)))
		}
	}

	if m.err != nil {
		content = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n" + content
	} else if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m ListModel) totalsLine() string {
	var income, spent float64

	for _, tx := range m.txs {
		if tx.Type == transaction.TypeIncome {
			income += tx.Amount
		} else {
			spent += tx.Amount
		}
	}

	return lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("%d shown | in +%s | out -%s | net %s",
		len(m.txs), FormatAmount(income), FormatAmount(spent), FormatAmount(income-spent)))
}

func activeStyle(s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(s)
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.txs))

	for _, tx := range m.txs {
		ack := ""
		if tx.Acknowledged {
			ack = "✓"
		}

		rows = append(rows, table.Row{
			FormatDate(tx.Date),
			string(tx.Type),
			tx.Category,
			FormatSigned(tx.Type, tx.Amount),
			tx.Description,
			ack,
		})
	}

	m.table.SetRows(rows)
}

type listLoadedMsg struct {
	txs []*transaction.Transaction
	err error
}

type listChangedMsg struct {
	status string
	err    error
}

func (m ListModel) loadCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, filter)

		return listLoadedMsg{txs: txs, err: err}
	}
}

func (m ListModel) saveCmd() tea.Cmd {
	tx := m.selected()
	if tx == nil {
		return nil
	}

	params, err := m.draft.params()

	return func() tea.Msg {
		if err != nil {
			return listChangedMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		updated := *tx
		updated.Date = params.Date
		updated.Type = params.Type
		updated.Category = params.Category
		updated.Amount = params.Amount
		updated.Description = params.Description

		if err := m.txService.Update(ctx, &updated); err != nil {
			return listChangedMsg{err: err}
		}

		if params.Acknowledged && !tx.Acknowledged {
			if err := acknowledge(ctx, m.txService, m.recurringService, tx.ID); err != nil {
				return listChangedMsg{err: err}
			}
		}

		return listChangedMsg{status: "Saved."}
	}
}

func (m ListModel) acknowledgeCmd() tea.Cmd {
	tx := m.selected()
	if tx == nil || tx.Acknowledged {
		return nil
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return listChangedMsg{status: "Acknowledged.", err: acknowledge(ctx, m.txService, m.recurringService, tx.ID)}
	}
}

func (m ListModel) deleteCmd() tea.Cmd {
	tx := m.selected()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return listChangedMsg{status: "Deleted.", err: m.txService.Delete(ctx, tx.ID)}
	}
}
