package services

import (
	"context"
	"fmt"

	"partnerapi/models"

	"github.com/sirupsen/logrus"
)

type SpotCounter interface {
	CountSpotsByStatus(ctx context.Context) ([]models.StatusCount, error)
}

// OccupancyService 定期統計各活動車位狀態
type OccupancyService struct {
	counter SpotCounter
}

func NewOccupancyService(counter SpotCounter) *OccupancyService {
	return &OccupancyService{counter: counter}
}

// Report 回傳 event_id -> status -> 數量，並逐一記錄
func (s *OccupancyService) Report(ctx context.Context) (map[string]map[models.SpotStatus]int64, error) {
	counts, err := s.counter.CountSpotsByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count spots: %w", err)
	}

	report := make(map[string]map[models.SpotStatus]int64)
	for _, c := range counts {
		if report[c.EventID] == nil {
			report[c.EventID] = make(map[models.SpotStatus]int64)
		}
		report[c.EventID][c.Status] += c.Total
	}

	for eventID, byStatus := range report {
		logrus.WithFields(logrus.Fields{
			"event_id":  eventID,
			"available": byStatus[models.SpotAvailable],
			"reserved":  byStatus[models.SpotReserved],
			"occupied":  byStatus[models.SpotOccupied],
		}).Info("Spot occupancy")
	}
	return report, nil
}
