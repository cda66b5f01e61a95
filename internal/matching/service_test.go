package matching_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/wealthboard/internal/matching"
)

func TestService_Suggest(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		lookup string
		found  string
		want   string
	}{
		{name: "normalizes case and spacing", input: "  ZOMATO   Order 123 ", lookup: "zomato order 123", found: "Food & Dining", want: "Food & Dining"},
		{name: "no mapping", input: "Unknown shop", lookup: "unknown shop", want: ""},
		{name: "blank input skips lookup", input: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := matching.NewMockRepository(ctrl)
			svc := matching.NewService(repo)

			if tt.lookup != "" {
				repo.EXPECT().FindCategory(gomock.Any(), tt.lookup).Return(tt.found, nil)
			}

			got, err := svc.Suggest(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Learn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)

	repo.EXPECT().UpsertMapping(gomock.Any(), "d mart", "Groceries").Return(nil)

	require.NoError(t, svc.Learn(context.Background(), " D  Mart", " Groceries "))
	assert.ErrorIs(t, svc.Learn(context.Background(), "", "Groceries"), matching.ErrEmptyPattern)
	assert.ErrorIs(t, svc.Learn(context.Background(), "uber", " "), matching.ErrEmptyPattern)
}

func TestService_Forget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := matching.NewMockRepository(ctrl)
	svc := matching.NewService(repo)

	repo.EXPECT().DeleteMapping(gomock.Any(), "uber").Return(matching.ErrNotFound)

	assert.ErrorIs(t, svc.Forget(context.Background(), "UBER"), matching.ErrNotFound)
}
