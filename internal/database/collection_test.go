package database

import (
	"context"
	"path/filepath"
	"testing"

	"fieldmate/internal/apperr"
	"fieldmate/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func TestCollectionCreateAssignsIncreasingIDs(t *testing.T) {
	col := NewCollection[model.Sale](newTestDB(t))
	ctx := context.Background()

	first := model.Sale{Date: "2024-06-01", ProductName: "Mixer", Quantity: 1}
	second := model.Sale{Date: "2024-06-02", ProductName: "Grinder", Quantity: 2}
	require.NoError(t, col.Create(ctx, &first))
	require.NoError(t, col.Create(ctx, &second))

	assert.Greater(t, second.ID, first.ID)
}

func TestCollectionIDsNeverReusedAfterDelete(t *testing.T) {
	col := NewCollection[model.Sale](newTestDB(t))
	ctx := context.Background()

	var lastID uint
	for i := 0; i < 3; i++ {
		s := model.Sale{Date: "2024-06-01", ProductName: "Fan", Quantity: 1}
		require.NoError(t, col.Create(ctx, &s))
		lastID = s.ID
	}
	require.NoError(t, col.Delete(ctx, lastID))

	next := model.Sale{Date: "2024-06-02", ProductName: "Fan", Quantity: 1}
	require.NoError(t, col.Create(ctx, &next))
	assert.Greater(t, next.ID, lastID, "a deleted identifier must never come back")
}

func TestCollectionClearKeepsIDSequence(t *testing.T) {
	col := NewCollection[model.Sale](newTestDB(t))
	ctx := context.Background()

	s := model.Sale{Date: "2024-06-01", ProductName: "Iron", Quantity: 1}
	require.NoError(t, col.Create(ctx, &s))
	require.NoError(t, col.Clear(ctx))

	all, err := col.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	next := model.Sale{Date: "2024-06-02", ProductName: "Iron", Quantity: 1}
	require.NoError(t, col.Create(ctx, &next))
	assert.Greater(t, next.ID, s.ID)
}

func TestCollectionPutPreservesExplicitID(t *testing.T) {
	col := NewCollection[model.Sale](newTestDB(t))
	ctx := context.Background()

	restored := model.Sale{ID: 42, Date: "2024-06-01", ProductName: "Cooler", Quantity: 3}
	require.NoError(t, col.Put(ctx, &restored))

	got, err := col.Get(ctx, uint(42))
	require.NoError(t, err)
	assert.Equal(t, "Cooler", got.ProductName)
	assert.Equal(t, uint(42), got.ID)
}

func TestCollectionPutUpdatesExistingRecord(t *testing.T) {
	col := NewCollection[model.Sale](newTestDB(t))
	ctx := context.Background()

	s := model.Sale{Date: "2024-06-01", ProductName: "Heater", Quantity: 1}
	require.NoError(t, col.Create(ctx, &s))

	s.Quantity = 5
	require.NoError(t, col.Put(ctx, &s))

	got, err := col.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Quantity)

	all, err := col.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCollectionGetMissingReturnsNotFound(t *testing.T) {
	col := NewCollection[model.Sale](newTestDB(t))

	_, err := col.Get(context.Background(), uint(999))
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestCollectionDeleteMissingIsNoop(t *testing.T) {
	col := NewCollection[model.Sale](newTestDB(t))
	assert.NoError(t, col.Delete(context.Background(), uint(999)))
}

func TestCollectionFindByIndexedColumn(t *testing.T) {
	col := NewCollection[model.Attendance](newTestDB(t))
	ctx := context.Background()

	require.NoError(t, col.Create(ctx, &model.Attendance{Date: "2024-06-01", Status: model.AttendancePresent}))
	require.NoError(t, col.Create(ctx, &model.Attendance{Date: "2024-06-02", Status: model.AttendanceLeave}))

	records, err := col.FindBy(ctx, "date", "2024-06-01")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, model.AttendancePresent, records[0].Status)

	none, err := col.FindBy(ctx, "date", "2024-06-03")
	require.NoError(t, err)
	assert.Empty(t, none)
}
