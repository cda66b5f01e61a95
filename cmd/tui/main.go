package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/wealthboard/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/wealthboard/internal/config"
	"github.com/MrJamesThe3rd/wealthboard/internal/database"
	"github.com/MrJamesThe3rd/wealthboard/internal/export"
	"github.com/MrJamesThe3rd/wealthboard/internal/importer"
	"github.com/MrJamesThe3rd/wealthboard/internal/insight"
	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
	liabilityStore "github.com/MrJamesThe3rd/wealthboard/internal/liability/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/wealthboard/internal/matching/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	recurringStore "github.com/MrJamesThe3rd/wealthboard/internal/recurring/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/report"
	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
	txStore "github.com/MrJamesThe3rd/wealthboard/internal/transaction/store"
)

type services struct {
	tx        *transaction.Service
	recurring *recurring.Service
	matching  *matching.Service
	importer  *importer.Service
	export    *export.Service
	report    *report.Service
	liability *liability.Service
	insight   *insight.Service
	catalog   *stock.Catalog
}

type menuEntry struct {
	key   string
	label string
	open  func(services) view.View
}

var menu = []menuEntry{
	{"1", "Dashboard", func(s services) view.View { return view.NewDashboardModel(s.report) }},
	{"2", "Import Budget Sheet", func(s services) view.View { return view.NewImportModel(s.importer) }},
	{"3", "Review Pending", func(s services) view.View {
		return view.NewReviewModel(s.tx, s.matching, s.recurring)
	}},
	{"4", "New Transaction", func(s services) view.View { return view.NewTransactionsModel(s.tx, s.matching) }},
	{"5", "List All Transactions", func(s services) view.View { return view.NewListModel(s.tx, s.recurring) }},
	{"6", "Recurring Rules", func(s services) view.View { return view.NewRecurringModel(s.recurring) }},
	{"7", "Liabilities", func(s services) view.View { return view.NewLiabilitiesModel(s.liability) }},
	{"8", "Spending Insights", func(s services) view.View { return view.NewInsightsModel(s.insight) }},
	{"9", "Stock Recommendations", func(s services) view.View { return view.NewStocksModel(s.catalog) }},
	{"0", "Export Transactions", func(s services) view.View { return view.NewExportModel(s.export) }},
}

type model struct {
	svc     services
	appName string

	// current is nil while the menu is shown.
	current view.View
}

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if cfg.DB.Migrate {
		if err := database.Migrate(context.Background(), db); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	catalog, err := stock.LoadCatalog()
	if err != nil {
		slog.Error("failed to load stock catalog", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	recurringSvc := recurring.NewService(recurringStore.New(db), txSvc)
	matchSvc := matching.NewService(matchingStore.New(db))

	return model{
		appName: cfg.App.Name,
		svc: services{
			tx:        txSvc,
			recurring: recurringSvc,
			matching:  matchSvc,
			importer:  importer.NewService(txSvc, matchSvc),
			export:    export.NewService(txSvc),
			report:    report.NewService(txSvc, recurringSvc, cfg.App.OpeningBalance),
			liability: liability.NewService(liabilityStore.New(db)),
			insight:   insight.NewService(txSvc, cfg.Insights.HistoryMonths),
			catalog:   catalog,
		},
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.current == nil {
			if msg.String() == "q" {
				return m, tea.Quit
			}

			for _, e := range menu {
				if msg.String() == e.key {
					m.current = e.open(m.svc)
					return m, m.current.Init()
				}
			}

			return m, nil
		}
	case view.BackMsg:
		m.current = nil
		return m, nil
	}

	if m.current == nil {
		return m, nil
	}

	next, cmd := m.current.Update(msg)
	if v, ok := next.(view.View); ok {
		m.current = v
	}

	return m, cmd
}

func (m model) View() string {
	if m.current != nil {
		return m.current.View()
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Render(m.appName))
	b.WriteString("\n\n")

	for _, e := range menu {
		b.WriteString(e.key + ". " + e.label + "\n")
	}

	b.WriteString("\nq. Quit")

	return lipgloss.NewStyle().Padding(2).Render(b.String())
}

func main() {
	p := tea.NewProgram(initialModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
