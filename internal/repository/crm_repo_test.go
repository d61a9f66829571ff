package repository

import (
	"context"
	"testing"

	"fieldmate/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRMListByStatus(t *testing.T) {
	repo := NewCRMRepository(newTestDB(t))
	ctx := context.Background()

	open := model.CRMIssue{
		Date: "2024-06-10", Timestamp: 1000, Category: model.CRMComplaint,
		CustomerName: "Asha", ContactNumber: "9876543210", Status: model.CRMOpen,
	}
	closed := model.CRMIssue{
		Date: "2024-06-09", Timestamp: 900, Category: model.CRMInstallation,
		CustomerName: "Vikram", ContactNumber: "9876500000", Status: model.CRMClosed,
	}
	require.NoError(t, repo.Add(ctx, &open))
	require.NoError(t, repo.Add(ctx, &closed))

	got, err := repo.ListByStatus(ctx, model.CRMOpen)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Asha", got[0].CustomerName)
}

func TestCRMUpdateMutatesStatus(t *testing.T) {
	repo := NewCRMRepository(newTestDB(t))
	ctx := context.Background()

	issue := model.CRMIssue{
		Date: "2024-06-10", Timestamp: 1000, Category: model.CRMStockIssue,
		CustomerName: "Asha", ContactNumber: "9876543210", Status: model.CRMOpen,
	}
	require.NoError(t, repo.Add(ctx, &issue))

	issue.Status = model.CRMClosed
	require.NoError(t, repo.Update(ctx, &issue))

	got, err := repo.Get(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CRMClosed, got.Status)
}

func TestCRMListMostRecentFirst(t *testing.T) {
	repo := NewCRMRepository(newTestDB(t))
	ctx := context.Background()

	older := model.CRMIssue{
		Date: "2024-06-09", Timestamp: 900, Category: model.CRMComplaint,
		CustomerName: "Vikram", ContactNumber: "9876500000", Status: model.CRMOpen,
	}
	newer := model.CRMIssue{
		Date: "2024-06-10", Timestamp: 1000, Category: model.CRMComplaint,
		CustomerName: "Asha", ContactNumber: "9876543210", Status: model.CRMOpen,
	}
	require.NoError(t, repo.Add(ctx, &older))
	require.NoError(t, repo.Add(ctx, &newer))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Asha", got[0].CustomerName)
}
