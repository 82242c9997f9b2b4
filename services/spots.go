package services

import (
	"context"
	"fmt"

	"partnerapi/models"
)

// SpotRepository 車位的資料存取介面
type SpotRepository interface {
	// FindEventByID 查無資料時回傳 nil, nil
	FindEventByID(ctx context.Context, eventID string) (*models.Event, error)
	FindSpotsByEvent(ctx context.Context, eventID string) ([]models.Spot, error)
	// FindSpotByEventAndID 查無資料時回傳 nil, nil
	FindSpotByEventAndID(ctx context.Context, eventID, spotID string) (*models.Spot, error)
	InsertSpot(ctx context.Context, spot *models.Spot) error
	UpdateSpotByEventAndID(ctx context.Context, eventID, spotID string, patch models.SpotPatch) (*models.Spot, error)
	DeleteSpotByEventAndID(ctx context.Context, eventID, spotID string) (*models.Spot, error)
}

// SpotsService 提供以活動為範圍的車位 CRUD
type SpotsService struct {
	repo SpotRepository
}

func NewSpotsService(repo SpotRepository) *SpotsService {
	return &SpotsService{repo: repo}
}

// Create 新增車位，活動必須存在，狀態一律為 available
func (s *SpotsService) Create(ctx context.Context, eventID string, req models.CreateSpotRequest) (*models.Spot, error) {
	event, err := s.repo.FindEventByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to find event %s: %w", eventID, err)
	}
	if event == nil {
		return nil, models.ErrEventNotFound
	}

	// 檢查與寫入之間沒有交易保護
	spot := &models.Spot{
		EventID: event.ID,
		Name:    req.Name,
		Status:  models.SpotAvailable,
	}
	if err := s.repo.InsertSpot(ctx, spot); err != nil {
		return nil, fmt.Errorf("failed to create spot: %w", err)
	}
	return spot, nil
}

// FindAll 查詢活動下所有車位
func (s *SpotsService) FindAll(ctx context.Context, eventID string) ([]models.Spot, error) {
	spots, err := s.repo.FindSpotsByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list spots of event %s: %w", eventID, err)
	}
	if spots == nil {
		spots = []models.Spot{}
	}
	return spots, nil
}

// FindOne 查詢特定車位，查無資料回傳 nil
func (s *SpotsService) FindOne(ctx context.Context, eventID, spotID string) (*models.Spot, error) {
	spot, err := s.repo.FindSpotByEventAndID(ctx, eventID, spotID)
	if err != nil {
		return nil, fmt.Errorf("failed to get spot %s: %w", spotID, err)
	}
	return spot, nil
}

func (s *SpotsService) Update(ctx context.Context, eventID, spotID string, req models.UpdateSpotRequest) (*models.Spot, error) {
	spot, err := s.repo.UpdateSpotByEventAndID(ctx, eventID, spotID, req.Patch())
	if err != nil {
		return nil, fmt.Errorf("failed to update spot %s: %w", spotID, err)
	}
	return spot, nil
}

// Remove 刪除車位並回傳刪除前的資料
func (s *SpotsService) Remove(ctx context.Context, eventID, spotID string) (*models.Spot, error) {
	spot, err := s.repo.DeleteSpotByEventAndID(ctx, eventID, spotID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete spot %s: %w", spotID, err)
	}
	return spot, nil
}
