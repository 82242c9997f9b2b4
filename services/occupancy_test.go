package services

import (
	"context"
	"testing"

	"partnerapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter []models.StatusCount

func (f fakeCounter) CountSpotsByStatus(context.Context) ([]models.StatusCount, error) {
	return f, nil
}

func TestOccupancyService_Report(t *testing.T) {
	svc := NewOccupancyService(fakeCounter{
		{EventID: "E1", Status: models.SpotAvailable, Total: 3},
		{EventID: "E1", Status: models.SpotReserved, Total: 1},
		{EventID: "E2", Status: models.SpotOccupied, Total: 2},
	})

	report, err := svc.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), report["E1"][models.SpotAvailable])
	assert.Equal(t, int64(1), report["E1"][models.SpotReserved])
	assert.Equal(t, int64(2), report["E2"][models.SpotOccupied])
	assert.Zero(t, report["E2"][models.SpotAvailable])
}
