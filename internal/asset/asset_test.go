package asset_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wealthboard/internal/asset"
)

var now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func TestGrowthRate(t *testing.T) {
	tests := []struct {
		typ  string
		want float64
	}{
		{"Real Estate", 0.08},
		{"Gold", 0.06},
		{"Vehicle", -0.15},
		{"Crypto", 0.25},
		{"Fixed Deposit", 0.07},
		{"Courses", 0},
		{"Art", 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			assert.InDelta(t, tt.want, asset.GrowthRate(tt.typ), 1e-12)
		})
	}
}

func TestProject(t *testing.T) {
	a := &asset.Asset{Type: "Gold", CurrentValue: 100000}

	got := asset.Project(a, asset.DefaultHorizon, now)
	require.Len(t, got, 11)

	assert.Equal(t, "2024", got[0].Label)
	assert.InDelta(t, 100000.0, got[0].Value, 1e-9)
	assert.InDelta(t, 106000.0, got[1].Value, 1e-6)
	assert.InDelta(t, 112360.0, got[2].Value, 1e-6)
	assert.Equal(t, 2034, got[10].Year)
}

func TestProject_Depreciating(t *testing.T) {
	got := asset.Project(&asset.Asset{Type: "Vehicle", CurrentValue: 1000}, 1, now)

	require.Len(t, got, 2)
	assert.InDelta(t, 850.0, got[1].Value, 1e-9)
}

func TestSummarize(t *testing.T) {
	got := asset.Summarize([]*asset.Asset{
		{Type: "Gold", CurrentValue: 150, PurchaseValue: 100},
		{Type: "Vehicle", CurrentValue: 50, PurchaseValue: 100},
		{Type: "Gold", CurrentValue: 100, PurchaseValue: 100},
	})

	assert.Equal(t, 3, got.Count)
	assert.InDelta(t, 300.0, got.TotalValue, 1e-9)
	assert.InDelta(t, 300.0, got.TotalPurchaseValue, 1e-9)
	assert.InDelta(t, 0.0, got.TotalGains, 1e-9)
	assert.InDelta(t, 250.0, got.ByType["Gold"], 1e-9)

	empty := asset.Summarize(nil)
	assert.Zero(t, empty.PercentageGains)
}

func TestAsset_Appreciation(t *testing.T) {
	assert.InDelta(t, 50.0, (&asset.Asset{CurrentValue: 150, PurchaseValue: 100}).Appreciation(), 1e-9)
	assert.Zero(t, (&asset.Asset{CurrentValue: 150}).Appreciation())
}

func TestService_Projection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := asset.NewMockRepository(ctrl)
	svc := asset.NewService(repo)

	id := uuid.New()
	repo.EXPECT().GetAsset(gomock.Any(), id).Return(&asset.Asset{ID: id, Type: "Crypto", CurrentValue: 400}, nil)

	a, points, err := svc.Projection(context.Background(), id, 2, now)
	require.NoError(t, err)
	assert.Equal(t, id, a.ID)
	require.Len(t, points, 3)
	assert.InDelta(t, 625.0, points[2].Value, 1e-9)
}

func TestService_Projection_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := asset.NewMockRepository(ctrl)
	svc := asset.NewService(repo)

	repo.EXPECT().GetAsset(gomock.Any(), gomock.Any()).Return(nil, asset.ErrNotFound)

	_, _, err := svc.Projection(context.Background(), uuid.New(), 10, now)
	assert.ErrorIs(t, err, asset.ErrNotFound)
}

func TestService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := asset.NewService(asset.NewMockRepository(ctrl))
	assert.ErrorIs(t, svc.Create(context.Background(), &asset.Asset{Name: "Bike"}), asset.ErrInvalid)
}
