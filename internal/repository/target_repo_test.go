package repository

import (
	"context"
	"testing"

	"fieldmate/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveForDateReplacesWholeRecord(t *testing.T) {
	repo := NewTargetRepository(newTestDB(t))
	ctx := context.Background()

	first, err := repo.SaveForDate(ctx, model.Target{
		Date:           "2024-06-10",
		DayTarget:      decimal.NewFromInt(15000),
		DayAchievement: decimal.NewFromInt(12000),
		WeekTarget:     decimal.NewFromInt(90000),
	})
	require.NoError(t, err)

	// A later save with only one figure zeroes the rest; there is no merge.
	second, err := repo.SaveForDate(ctx, model.Target{
		Date:      "2024-06-10",
		DayTarget: decimal.NewFromInt(20000),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.DayTarget.Equal(decimal.NewFromInt(20000)))
	assert.True(t, second.DayAchievement.IsZero())
	assert.True(t, second.WeekTarget.IsZero())

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSaveForDateSeparateDates(t *testing.T) {
	repo := NewTargetRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.SaveForDate(ctx, model.Target{Date: "2024-06-10", DayTarget: decimal.NewFromInt(1)})
	require.NoError(t, err)
	_, err = repo.SaveForDate(ctx, model.Target{Date: "2024-06-11", DayTarget: decimal.NewFromInt(2)})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindByDateMissingReturnsNil(t *testing.T) {
	repo := NewTargetRepository(newTestDB(t))

	got, err := repo.FindByDate(context.Background(), "2024-06-12")
	require.NoError(t, err)
	assert.Nil(t, got)
}
