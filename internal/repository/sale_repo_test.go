package repository

import (
	"context"
	"testing"

	"fieldmate/internal/apperr"
	"fieldmate/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleListOrdersByRecency(t *testing.T) {
	repo := NewSaleRepository(newTestDB(t))
	ctx := context.Background()

	older := model.Sale{Date: "2024-06-01", Timestamp: 1000, ProductName: "Mixer", Quantity: 1, Price: decimal.NewFromInt(100)}
	newer := model.Sale{Date: "2024-06-02", Timestamp: 2000, ProductName: "Grinder", Quantity: 1, Price: decimal.NewFromInt(200)}
	require.NoError(t, repo.Add(ctx, &older))
	require.NoError(t, repo.Add(ctx, &newer))

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, "Grinder", sales[0].ProductName)
	assert.Equal(t, "Mixer", sales[1].ProductName)
}

func TestSaleListTiebreaksEqualTimestampsByID(t *testing.T) {
	repo := NewSaleRepository(newTestDB(t))
	ctx := context.Background()

	first := model.Sale{Date: "2024-06-01", Timestamp: 1000, ProductName: "A", Quantity: 1, Price: decimal.NewFromInt(10)}
	second := model.Sale{Date: "2024-06-01", Timestamp: 1000, ProductName: "B", Quantity: 1, Price: decimal.NewFromInt(10)}
	require.NoError(t, repo.Add(ctx, &first))
	require.NoError(t, repo.Add(ctx, &second))

	sales, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 2)
	assert.Equal(t, second.ID, sales[0].ID, "later insert wins the tie")
}

func TestSaleUpdateMissingRecordFails(t *testing.T) {
	repo := NewSaleRepository(newTestDB(t))

	err := repo.Update(context.Background(), &model.Sale{ID: 7, Date: "2024-06-01", ProductName: "Ghost", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.CodeNotFound, apperr.CodeOf(err))
}

func TestSaleRoundTripsBillImage(t *testing.T) {
	repo := NewSaleRepository(newTestDB(t))
	ctx := context.Background()

	image := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	sale := model.Sale{
		Date:          "2024-06-01",
		Timestamp:     1000,
		ProductName:   "Mixer",
		Quantity:      1,
		Price:         decimal.NewFromInt(100),
		BillImage:     image,
		BillImageMIME: "image/jpeg",
	}
	require.NoError(t, repo.Add(ctx, &sale))

	got, err := repo.Get(ctx, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, image, got.BillImage)
	assert.Equal(t, "image/jpeg", got.BillImageMIME)
}
