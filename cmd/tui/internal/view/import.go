package view

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/importer"
	"github.com/MrJamesThe3rd/wealthboard/internal/importer/receipt"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

const importTimeout = 2 * time.Minute

type importSource string

const (
	sourceSheet   importSource = "sheet"
	sourceReceipt importSource = "receipt"
)

type importStep int

const (
	importStepSource importStep = iota
	importStepPick
	importStepWorking
	importStepConflicts
	importStepReceipt
	importStepDone
)

// ImportModel brings in a monthly budget sheet or the text of a scanned
// receipt. Sheet rows that match stored transactions are held back until the
// user picks which ones to keep.
type ImportModel struct {
	CommonModel
	importService *importer.Service

	step   importStep
	source importSource
	form   *huh.Form
	picker filepicker.Model

	fresh     []transaction.CreateParams
	conflicts []transaction.Conflict
	keep      map[int]bool
	table     table.Model

	receipt receipt.Receipt
	draft   *txDraft

	status string
	notes  []string
	err    error
}

func NewImportModel(impSvc *importer.Service) ImportModel {
	m := ImportModel{importService: impSvc}
	return m.restart()
}

func (m ImportModel) restart() ImportModel {
	m.step = importStepSource
	m.source = sourceSheet
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("source").
				Title("What are you importing?").
				Options(
					huh.NewOption("Monthly budget sheet (.csv)", string(sourceSheet)),
					huh.NewOption("Receipt text (.txt)", string(sourceReceipt)),
				),
		),
	).WithWidth(50).WithShowHelp(false)
	m.conflicts, m.fresh, m.keep = nil, nil, nil
	m.status, m.notes, m.err = "", nil, nil

	return m
}

func newFilePicker(ext string) filepicker.Model {
	fp := filepicker.New()
	fp.CurrentDirectory, _ = os.Getwd()
	fp.AllowedTypes = []string{ext}
	fp.DirAllowed = false
	fp.FileAllowed = true
	fp.SetHeight(15)

	return fp
}

func (m ImportModel) Title() string { return "Import" }

func (m ImportModel) ShortHelp() string {
	switch m.step {
	case importStepConflicts:
		return "Space: keep/skip | a: keep all | n: skip all | Enter: import | Esc: cancel"
	case importStepReceipt:
		return "Enter/Tab: next field | Esc: cancel"
	case importStepDone:
		return "Esc: import another"
	}

	return "Esc: back | Enter: select"
}

func (m ImportModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			if m.step == importStepSource {
				return m, Back
			}

			m = m.restart()

			return m, m.form.Init()
		}

		if m.step == importStepConflicts {
			return m.updateConflicts(msg)
		}

	case sheetResultMsg:
		return m.handleSheet(msg)

	case receiptResultMsg:
		if msg.err != nil {
			return m.finish("", msg.err), nil
		}

		m.receipt = msg.receipt
		m.draft = receiptDraft(msg.receipt)
		m.form = huh.NewForm(detailsGroup(m.draft), categoryGroup(m.draft)).WithWidth(50).WithShowHelp(false)
		m.step = importStepReceipt

		return m, m.form.Init()

	case savedMsg:
		return m.finish(fmt.Sprintf("Imported %d transactions.", msg.count), msg.err), nil
	}

	switch m.step {
	case importStepSource:
		return m.updateSource(msg)
	case importStepPick:
		return m.updatePicker(msg)
	case importStepReceipt:
		return m.updateReceipt(msg)
	}

	return m, nil
}

func (m ImportModel) finish(status string, err error) ImportModel {
	m.step = importStepDone
	m.status, m.err = status, err

	return m
}

func (m ImportModel) updateSource(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.source = importSource(m.form.GetString("source"))

	ext := ".csv"
	if m.source == sourceReceipt {
		ext = ".txt"
	}

	m.picker = newFilePicker(ext)
	m.step = importStepPick

	return m, m.picker.Init()
}

func (m ImportModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	didSelect, path := m.picker.DidSelectFile(msg)
	if !didSelect {
		return m, cmd
	}

	m.step = importStepWorking
	m.status = "Reading " + path + "..."

	if m.source == sourceReceipt {
		return m, m.receiptCmd(path)
	}

	return m, m.sheetCmd(path)
}

func (m ImportModel) handleSheet(msg sheetResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m.finish("", msg.err), nil
	}

	m.notes = sheetNotes(msg.out)
	result := msg.out.Result

	if len(result.Conflicts) == 0 {
		return m.finish(fmt.Sprintf("Imported %d transactions.", len(result.Imported)), nil), nil
	}

	m.fresh = result.New
	m.conflicts = result.Conflicts
	m.keep = make(map[int]bool, len(result.Conflicts))
	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Keep", Width: 4},
			{Title: "Month", Width: 10},
			{Title: "Type", Width: 10},
			{Title: "Category", Width: 20},
			{Title: "Amount", Width: 12},
			{Title: "Stored on", Width: 10},
		}),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	m.refreshConflicts()
	m.step = importStepConflicts

	return m, nil
}

func sheetNotes(out *importer.SheetImport) []string {
	var notes []string

	if out.Charset != "" {
		notes = append(notes, "Detected encoding: "+out.Charset)
	}

	if out.Skipped > 0 {
		notes = append(notes, fmt.Sprintf("Skipped %d non-numeric cells", out.Skipped))
	}

	if len(out.Unmapped) > 0 {
		notes = append(notes, "Unmapped items: "+strings.Join(out.Unmapped, ", "))
	}

	return notes
}

func (m *ImportModel) refreshConflicts() {
	rows := make([]table.Row, len(m.conflicts))

	for i, c := range m.conflicts {
		mark := ""
		if m.keep[i] {
			mark = "x"
		}

		rows[i] = table.Row{
			mark,
			c.Incoming.Date.Format("Jan 2006"),
			string(c.Incoming.Type),
			c.Incoming.Category,
			FormatAmount(c.Incoming.Amount),
			FormatDate(c.Existing.CreatedAt),
		}
	}

	m.table.SetRows(rows)
}

func (m ImportModel) updateConflicts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		i := m.table.Cursor()
		m.keep[i] = !m.keep[i]
		m.refreshConflicts()

		return m, nil
	case "a", "n":
		for i := range m.conflicts {
			m.keep[i] = msg.String() == "a"
		}

		m.refreshConflicts()

		return m, nil
	case "enter":
		params := append([]transaction.CreateParams(nil), m.fresh...)
		for i, c := range m.conflicts {
			if m.keep[i] {
				params = append(params, c.Incoming)
			}
		}

		m.step = importStepWorking
		m.status = "Saving..."

		return m, m.confirmCmd(params)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func receiptDraft(r receipt.Receipt) *txDraft {
	d := &txDraft{
		date:        FormatDate(r.Date),
		txType:      transaction.TypeExpense,
		description: r.Merchant,
		category:    r.SuggestedCategory,
	}

	if r.Amount != nil {
		d.amount = fmt.Sprintf("%.2f", *r.Amount)
	}

	return d
}

func (m ImportModel) updateReceipt(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	params, err := m.draft.params()
	if err != nil {
		return m.finish("", err), nil
	}

	m.step = importStepWorking
	m.status = "Saving..."

	return m, m.confirmCmd([]transaction.CreateParams{params})
}

func (m ImportModel) View() string {
	pad := lipgloss.NewStyle().Padding(1)

	switch m.step {
	case importStepSource:
		return pad.Render(m.form.View())

	case importStepPick:
		return pad.Render(fmt.Sprintf("Select a %s file:\n\n%s", m.source, m.picker.View()))

	case importStepWorking:
		return pad.Render(m.status)

	case importStepConflicts:
		header := fmt.Sprintf("%d new rows, %d already stored. Mark the duplicates to import anyway.",
			len(m.fresh), len(m.conflicts))

		return pad.Render(header + "\n\n" + m.table.View())

	case importStepReceipt:
		return pad.Render(m.receiptInfo() + "\n" + m.form.View())

	case importStepDone:
		return pad.Render(m.doneView())
	}

	return ""
}

func (m ImportModel) receiptInfo() string {
	r := m.receipt
	info := fmt.Sprintf("Confidence %.0f%%  |  category from %s", r.Confidence*100, r.CategorySource)

	if !r.DateFound {
		info += "  |  no date found, using today"
	}

	return lipgloss.NewStyle().Faint(true).Render(info)
}

func (m ImportModel) doneView() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	body := successStyle.Render(m.status)
	for _, n := range m.notes {
		body += "\n" + lipgloss.NewStyle().Faint(true).Render(n)
	}

	return body
}

type sheetResultMsg struct {
	out *importer.SheetImport
	err error
}

type receiptResultMsg struct {
	receipt receipt.Receipt
	err     error
}

type savedMsg struct {
	count int
	err   error
}

func (m ImportModel) sheetCmd(path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return sheetResultMsg{err: err}
		}
		defer f.Close()

		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		out, err := m.importService.ImportSheet(ctx, f)

		return sheetResultMsg{out: out, err: err}
	}
}

func (m ImportModel) receiptCmd(path string) tea.Cmd {
	return func() tea.Msg {
		text, err := os.ReadFile(path)
		if err != nil {
			return receiptResultMsg{err: err}
		}

		ctx, cancel := DbCtx()
		defer cancel()

		r, err := m.importService.ParseReceipt(ctx, string(text), time.Now())

		return receiptResultMsg{receipt: r, err: err}
	}
}

func (m ImportModel) confirmCmd(params []transaction.CreateParams) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), importTimeout)
		defer cancel()

		txs, err := m.importService.Confirm(ctx, params)

		return savedMsg{count: len(txs), err: err}
	}
}
