package view

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/wealthboard/internal/export"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type exportStep int

const (
	exportStepPeriod exportStep = iota
	exportStepOptions
	exportStepPreview
	exportStepWriting
	exportStepDone
)

const exportTimeout = 2 * time.Minute

// exportOptions is held by pointer so the form bindings outlive model copies.
type exportOptions struct {
	txType string
	dir    string
}

func (o *exportOptions) apply(filter transaction.ListFilter) transaction.ListFilter {
	if o.txType != "" {
		t := transaction.Type(o.txType)
		filter.Type = &t
	}

	return filter
}

// ExportModel previews the totals for a period before writing the CSV.
type ExportModel struct {
	CommonModel
	exportService *export.Service

	step    exportStep
	picker  PeriodPicker
	period  PeriodSelectedMsg
	options *exportOptions
	form    *huh.Form
	spinner spinner.Model

	preview export.Summary
	path    string
	err     error
}

func NewExportModel(svc *export.Service) ExportModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ExportModel{
		exportService: svc,
		picker:        NewPeriodPicker(PeriodLastMonth),
		options:       &exportOptions{dir: "./exports"},
		spinner:       s,
	}
}

func (m ExportModel) Title() string { return "Export Transactions" }

func (m ExportModel) ShortHelp() string {
	switch m.step {
	case exportStepPreview:
		return "Enter: write file | Esc: change options"
	case exportStepWriting:
		return "Exporting..."
	case exportStepDone:
		return "Esc: back to menu"
	}

	return "Esc: back | Enter: confirm"
}

func (m ExportModel) Init() tea.Cmd {
	return nil
}

func (m ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PeriodSelectedMsg:
		m.period = msg
		m.form = exportOptionsForm(m.options)
		m.step = exportStepOptions

		return m, m.form.Init()

	case previewMsg:
		m.step = exportStepPreview
		m.preview, m.err = msg.summary, msg.err

		return m, nil

	case exportedMsg:
		m.step = exportStepDone
		m.path, m.err = msg.path, msg.err

		return m, nil

	case spinner.TickMsg:
		if m.step != exportStepWriting {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	switch m.step {
	case exportStepPeriod:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc && m.picker.Choosing() {
			return m, Back
		}

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd

	case exportStepOptions:
		return m.updateOptions(msg)

	case exportStepPreview:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.Type {
			case tea.KeyEnter:
				if m.err != nil || m.preview.Count == 0 {
					return m, nil
				}

				m.step = exportStepWriting

				return m, tea.Batch(m.spinner.Tick, m.writeCmd())
			case tea.KeyEsc:
				m.form = exportOptionsForm(m.options)
				m.step = exportStepOptions
				m.err = nil

				return m, m.form.Init()
			}
		}

	case exportStepDone:
		if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
			return m, Back
		}
	}

	return m, nil
}

func (m ExportModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.Type == tea.KeyEsc {
		m.step = exportStepPeriod
		m.picker.Reset()

		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.previewCmd()
}

func exportOptionsForm(o *exportOptions) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transactions").
				Options(
					huh.NewOption("All types", ""),
					huh.NewOption("Income", string(transaction.TypeIncome)),
					huh.NewOption("Expenses", string(transaction.TypeExpense)),
					huh.NewOption("Investments", string(transaction.TypeInvestment)),
				).
				Value(&o.txType),

			huh.NewInput().
				Title("Output directory").
				Placeholder("./exports").
				Value(&o.dir),
		),
	).WithWidth(50).WithShowHelp(false)
}

func (m ExportModel) View() string {
	pad := lipgloss.NewStyle().Padding(1)

	switch m.step {
	case exportStepPeriod:
		return pad.Render(m.picker.View())

	case exportStepOptions:
		return pad.Render(headerStyle.Render(m.period.Label()) + "\n\n" + m.form.View())

	case exportStepPreview:
		return pad.Render(m.previewView())

	case exportStepWriting:
		return pad.Render(fmt.Sprintf("%s Writing %s...", m.spinner.View(), export.Filename(m.filter())))

	case exportStepDone:
		if m.err != nil {
			return pad.Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}

		return pad.Render(lipgloss.JoinVertical(lipgloss.Left,
			successStyle.Bold(true).Render("Export complete"),
			"",
			"Written to "+m.path,
		))
	}

	return ""
}

func (m ExportModel) previewView() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err))
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render(m.period.Label()) + "\n\n")
	b.WriteString(m.preview.Text())

	if m.preview.Count == 0 {
		b.WriteString("\nNothing to write. Esc to change the options.")
	} else {
		b.WriteString("\nPress Enter to write " + export.Filename(m.filter()) + " into " + m.options.dir)
	}

	return b.String()
}

func (m ExportModel) filter() transaction.ListFilter {
	return m.options.apply(m.period.Filter())
}

type previewMsg struct {
	summary export.Summary
	err     error
}

func (m ExportModel) previewCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		sum, err := m.exportService.Export(ctx, filter, io.Discard)

		return previewMsg{summary: sum, err: err}
	}
}

type exportedMsg struct {
	path string
	err  error
}

func (m ExportModel) writeCmd() tea.Cmd {
	filter, dir := m.filter(), m.options.dir

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()

		path, _, err := m.exportService.ExportFile(ctx, filter, dir)

		return exportedMsg{path: path, err: err}
	}
}
