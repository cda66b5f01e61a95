package view

import (
	"context"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

const dbTimeout = 5 * time.Second

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
)

// FormatAmount renders an amount with thousands separators, e.g. 12,345.60.
func FormatAmount(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// FormatSigned prefixes income with + and outflows with -.
func FormatSigned(t transaction.Type, v float64) string {
	if t == transaction.TypeIncome {
		return "+" + FormatAmount(v)
	}

	return "-" + FormatAmount(v)
}

func FormatPercent(v float64) string {
	return humanize.FormatFloat("#,###.#", v) + "%"
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

// DbCtx returns a context with a standard timeout for database operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
