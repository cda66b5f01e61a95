package receipt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/wealthboard/internal/importer/receipt"
)

var now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestParse(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantAmount   *float64
		wantDate     time.Time
		wantMerchant string
		wantCategory string
	}{
		{
			name:         "restaurant bill with total",
			text:         "Spice Garden Restaurant\nDate: 05/02/2024\nPaneer 250.00\nGrand Total Rs. 472.50\n",
			wantAmount:   new(472.50),
			wantDate:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			wantMerchant: "Spice Garden Restaurant",
			wantCategory: "Food & Dining",
		},
		{
			name:         "net amount",
			text:         "DMart Ready\n12-01-2024\nItems 3\nNet Amount: 1299.00",
			wantAmount:   new(1299.00),
			wantDate:     time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			wantMerchant: "DMart Ready",
			wantCategory: "Shopping",
		},
		{
			name:         "first amount fallback",
			text:         "Uber Trip\nfare 189.40 incl. tax",
			wantAmount:   new(189.40),
			wantDate:     now,
			wantMerchant: "Uber Trip",
			wantCategory: "Transport",
		},
		{
			name:         "no amount and invalid date",
			text:         "\nHandwritten note 31/13/2024",
			wantDate:     now,
			wantMerchant: receipt.UnknownMerchant,
			wantCategory: receipt.GeneralCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := receipt.Parse(tt.text, now)

			if tt.wantAmount == nil {
				assert.Nil(t, got.Amount)
			} else {
				require.NotNil(t, got.Amount)
				assert.InDelta(t, *tt.wantAmount, *got.Amount, 1e-9)
			}

			assert.Equal(t, tt.wantDate, got.Date)
			assert.Equal(t, tt.wantMerchant, got.Merchant)
			assert.Equal(t, tt.wantCategory, got.SuggestedCategory)
			assert.Equal(t, receipt.SourceKeyword, got.CategorySource)
			assert.InDelta(t, receipt.Confidence, got.Confidence, 1e-12)
			assert.Equal(t, tt.text, got.RawText)
		})
	}
}

func TestInferCategory(t *testing.T) {
	assert.Equal(t, "Insurance", receipt.InferCategory("HDFC Life premium receipt"))
	assert.Equal(t, "Food & Dining", receipt.InferCategory("Swiggy order from Reliance Fresh"))
	assert.Equal(t, receipt.GeneralCategory, receipt.InferCategory("Stationery"))
}
