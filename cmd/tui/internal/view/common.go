package view

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// View is a screen opened from the main menu.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// acknowledge confirms a transaction, stamping its recurring rule when it
// was generated by one.
func acknowledge(ctx context.Context, txs *transaction.Service, rules *recurring.Service, id uuid.UUID) error {
	err := rules.Acknowledge(ctx, id, time.Now())
	if errors.Is(err, recurring.ErrNotRecurring) {
		return txs.Acknowledge(ctx, id)
	}

	return err
}
