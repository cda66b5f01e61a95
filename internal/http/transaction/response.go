package transaction

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

// Response is the wire form of a stored transaction.
type Response struct {
	ID           uuid.UUID        `json:"id"`
	Date         string           `json:"date"`
	Type         transaction.Type `json:"type"`
	Category     string           `json:"category"`
	Amount       float64          `json:"amount"`
	Description  string           `json:"description"`
	IsRecurring  bool             `json:"is_recurring"`
	RecurringID  *uuid.UUID       `json:"recurring_id,omitempty"`
	Acknowledged bool             `json:"acknowledged"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at,omitempty"`
}

func ToResponse(tx *transaction.Transaction) Response {
	return Response{
		ID:           tx.ID,
		Date:         tx.Date.Format(time.DateOnly),
		Type:         tx.Type,
		Category:     tx.Category,
		Amount:       tx.Amount,
		Description:  tx.Description,
		IsRecurring:  tx.IsRecurring,
		RecurringID:  tx.RecurringID,
		Acknowledged: tx.Acknowledged,
		CreatedAt:    tx.CreatedAt,
		UpdatedAt:    tx.UpdatedAt,
	}
}

func ToResponseList(txs []*transaction.Transaction) []Response {
	resp := make([]Response, len(txs))
	for i, tx := range txs {
		resp[i] = ToResponse(tx)
	}

	return resp
}

// ParamsDTO is the wire form of transaction.CreateParams.
type ParamsDTO struct {
	Date         string           `json:"date"`
	Type         transaction.Type `json:"type"`
	Category     string           `json:"category"`
	Amount       float64          `json:"amount"`
	Description  string           `json:"description"`
	Acknowledged *bool            `json:"acknowledged,omitempty"`
}

func ToParamsDTO(p transaction.CreateParams) ParamsDTO {
	return ParamsDTO{
		Date:         p.Date.Format(time.DateOnly),
		Type:         p.Type,
		Category:     p.Category,
		Amount:       p.Amount,
		Description:  p.Description,
		Acknowledged: new(p.Acknowledged),
	}
}

// Params converts the DTO, treating a missing acknowledged flag as true.
func (d ParamsDTO) Params() (transaction.CreateParams, error) {
	date, err := time.Parse(time.DateOnly, d.Date)
	if err != nil {
		return transaction.CreateParams{}, err
	}

	ack := true
	if d.Acknowledged != nil {
		ack = *d.Acknowledged
	}

	return transaction.CreateParams{
		Date:         date,
		Type:         d.Type,
		Category:     d.Category,
		Amount:       d.Amount,
		Description:  d.Description,
		Acknowledged: ack,
	}, nil
}
