package state

import (
	"context"
	"path/filepath"
	"testing"

	"fieldmate/internal/database"
	"fieldmate/internal/model"
	"fieldmate/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, repository.SaleRepository) {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)

	saleRepo := repository.NewSaleRepository(db)
	cache := NewCache(
		saleRepo,
		repository.NewAttendanceRepository(db),
		repository.NewTargetRepository(db),
		repository.NewCRMRepository(db),
		repository.NewSettingsRepository(db),
	)
	require.NoError(t, cache.LoadAll(context.Background()))
	return cache, saleRepo
}

func TestCacheObservesCompletedWriteAfterReload(t *testing.T) {
	cache, saleRepo := newTestCache(t)
	ctx := context.Background()

	assert.Empty(t, cache.Sales())

	sale := model.Sale{Date: "2024-06-10", Timestamp: 1, ProductName: "Mixer", Quantity: 1, Price: decimal.NewFromInt(100)}
	require.NoError(t, saleRepo.Add(ctx, &sale))

	assert.Empty(t, cache.Sales(), "nothing changes until the reload")
	require.NoError(t, cache.ReloadSales(ctx))
	assert.Len(t, cache.Sales(), 1)
}

func TestCacheGettersReturnCopies(t *testing.T) {
	cache, saleRepo := newTestCache(t)
	ctx := context.Background()

	sale := model.Sale{Date: "2024-06-10", Timestamp: 1, ProductName: "Mixer", Quantity: 1, Price: decimal.NewFromInt(100)}
	require.NoError(t, saleRepo.Add(ctx, &sale))
	require.NoError(t, cache.ReloadSales(ctx))

	snapshot := cache.Sales()
	snapshot[0].ProductName = "Tampered"

	assert.Equal(t, "Mixer", cache.Sales()[0].ProductName)
}

func TestCacheSettingsFallsBackToDefaults(t *testing.T) {
	cache := NewCache(nil, nil, nil, nil, nil)

	settings := cache.Settings()
	assert.Equal(t, model.ThemeDark, settings.Theme)
	assert.True(t, settings.BrandTarget.Equal(decimal.NewFromInt(500000)))
}

func TestCacheLoadAllBootstrapsSettings(t *testing.T) {
	cache, _ := newTestCache(t)

	settings := cache.Settings()
	assert.Equal(t, model.SettingsKey, settings.ID)
	assert.False(t, settings.IsLoggedIn)
}
