package service

import (
	"context"
	"testing"

	"fieldmate/internal/apperr"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetSaveParsesAllSixFigures(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTargetService(env.targetRepo, env.cache, env.notifier)

	stored, err := svc.Save(context.Background(), TargetRequest{
		Date:            "2024-06-10",
		DayTarget:       "15000",
		DayAchievement:  "12000.50",
		WeekTarget:      "90000",
		WeekAchievement: "45000",
		EOLTarget:       "10",
		EOLAchieve:      "4",
	})
	require.NoError(t, err)

	assert.True(t, stored.DayAchievement.Equal(decimal.RequireFromString("12000.50")))
	assert.True(t, stored.EOLAchieve.Equal(decimal.NewFromInt(4)))
	assert.Contains(t, env.notifier.all(), "targets:saved")
}

func TestTargetSaveEmptyFiguresDefaultToZero(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTargetService(env.targetRepo, env.cache, env.notifier)

	stored, err := svc.Save(context.Background(), TargetRequest{Date: "2024-06-10", DayTarget: "100"})
	require.NoError(t, err)
	assert.True(t, stored.WeekTarget.IsZero())
	assert.True(t, stored.EOLTarget.IsZero())
}

func TestTargetSaveRejectsNegativeFigure(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTargetService(env.targetRepo, env.cache, env.notifier)

	_, err := svc.Save(context.Background(), TargetRequest{Date: "2024-06-10", WeekTarget: "-1"})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeValidation, apperr.CodeOf(err))
	assert.Empty(t, svc.List(context.Background()))
}

func TestTargetSaveReplacesSameDate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTargetService(env.targetRepo, env.cache, env.notifier)
	ctx := context.Background()

	first, err := svc.Save(ctx, TargetRequest{Date: "2024-06-10", DayTarget: "100", WeekTarget: "700"})
	require.NoError(t, err)
	second, err := svc.Save(ctx, TargetRequest{Date: "2024-06-10", DayTarget: "200"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.True(t, second.WeekTarget.IsZero(), "replace, not merge")
	assert.Len(t, svc.List(ctx), 1)
}

func TestTargetForDate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTargetService(env.targetRepo, env.cache, env.notifier)
	ctx := context.Background()

	_, err := svc.Save(ctx, TargetRequest{Date: "2024-06-10", DayTarget: "100"})
	require.NoError(t, err)

	assert.NotNil(t, svc.ForDate(ctx, "2024-06-10"))
	assert.Nil(t, svc.ForDate(ctx, "2024-06-11"))
}
