package liability

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
)

type liabilityRequest struct {
	Name              string   `json:"name"`
	Type              string   `json:"type"`
	TotalAmount       float64  `json:"total_amount"`
	OutstandingAmount float64  `json:"outstanding_amount"`
	InterestRate      float64  `json:"interest_rate"`
	EMI               *float64 `json:"emi,omitempty"`
	StartDate         string   `json:"start_date"`
	EndDate           *string  `json:"end_date,omitempty"`
	Notes             string   `json:"notes"`
}

func (req liabilityRequest) liability(id uuid.UUID) (*liability.Liability, error) {
	start, err := time.Parse(time.DateOnly, req.StartDate)
	if err != nil {
		return nil, errors.New("start_date must be YYYY-MM-DD")
	}

	l := &liability.Liability{
		ID:                id,
		Name:              req.Name,
		Type:              req.Type,
		TotalAmount:       req.TotalAmount,
		OutstandingAmount: req.OutstandingAmount,
		InterestRate:      req.InterestRate,
		EMI:               req.EMI,
		StartDate:         start,
		Notes:             req.Notes,
	}

	if req.EndDate != nil {
		end, err := time.Parse(time.DateOnly, *req.EndDate)
		if err != nil {
			return nil, errors.New("end_date must be YYYY-MM-DD")
		}

		l.EndDate = &end
	}

	return l, nil
}

type liabilityResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	TotalAmount       float64   `json:"total_amount"`
	OutstandingAmount float64   `json:"outstanding_amount"`
	InterestRate      float64   `json:"interest_rate"`
	EMI               *float64  `json:"emi,omitempty"`
	StartDate         string    `json:"start_date"`
	EndDate           *string   `json:"end_date,omitempty"`
	Notes             string    `json:"notes"`
	CreatedAt         time.Time `json:"created_at"`
}

func toResponse(l *liability.Liability) liabilityResponse {
	resp := liabilityResponse{
		ID:                l.ID,
		Name:              l.Name,
		Type:              l.Type,
		TotalAmount:       l.TotalAmount,
		OutstandingAmount: l.OutstandingAmount,
		InterestRate:      l.InterestRate,
		EMI:               l.EMI,
		StartDate:         l.StartDate.Format(time.DateOnly),
		Notes:             l.Notes,
		CreatedAt:         l.CreatedAt,
	}

	if l.EndDate != nil {
		resp.EndDate = new(l.EndDate.Format(time.DateOnly))
	}

	return resp
}

type summaryResponse struct {
	Count             int     `json:"count"`
	TotalOriginal     float64 `json:"total_original"`
	TotalOutstanding  float64 `json:"total_outstanding"`
	TotalEMI          float64 `json:"total_emi"`
	AverageRate       float64 `json:"average_rate"`
	RepaymentProgress float64 `json:"repayment_progress"`
}

type checkpointResponse struct {
	Period             string  `json:"period"`
	Month              int     `json:"month"`
	Balance            float64 `json:"balance"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

type projectionResponse struct {
	LiabilityID   uuid.UUID            `json:"liability_id"`
	Amortizes     bool                 `json:"amortizes"`
	MonthsToClose int                  `json:"months_to_close"`
	Tenure        string               `json:"tenure"`
	TotalInterest float64              `json:"total_interest"`
	TotalCost     float64              `json:"total_cost"`
	ClosureDate   *string              `json:"closure_date,omitempty"`
	Checkpoints   []checkpointResponse `json:"checkpoints"`
}

func toProjectionResponse(l *liability.Liability, p liability.Projection) projectionResponse {
	resp := projectionResponse{
		LiabilityID:   l.ID,
		Amortizes:     p.Amortizes(),
		MonthsToClose: p.MonthsToClose,
		Tenure:        liability.Tenure(p.MonthsToClose),
		TotalInterest: p.TotalInterest,
		TotalCost:     p.TotalCost,
		Checkpoints:   make([]checkpointResponse, len(p.Checkpoints)),
	}

	if p.ClosureDate != nil {
		resp.ClosureDate = new(p.ClosureDate.Format(time.DateOnly))
	}

	for i, c := range p.Checkpoints {
		resp.Checkpoints[i] = checkpointResponse{
			Period:             c.PeriodLabel,
			Month:              c.Month,
			Balance:            c.Balance,
			CumulativeInterest: c.CumulativeInterest,
		}
	}

	return resp
}
