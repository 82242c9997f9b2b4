package database

import (
	"context"
	"errors"
	"fmt"

	"partnerapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SpotRepository 以 GORM 實作車位存取
type SpotRepository struct {
	db *gorm.DB
}

func NewSpotRepository(db *gorm.DB) *SpotRepository {
	return &SpotRepository{db: db}
}

func (r *SpotRepository) FindEventByID(ctx context.Context, eventID string) (*models.Event, error) {
	return findEvent(r.db.WithContext(ctx), eventID)
}

func (r *SpotRepository) FindSpotsByEvent(ctx context.Context, eventID string) ([]models.Spot, error) {
	var spots []models.Spot
	if err := r.db.WithContext(ctx).Where("event_id = ?", eventID).Find(&spots).Error; err != nil {
		return nil, err
	}
	return spots, nil
}

func (r *SpotRepository) FindSpotByEventAndID(ctx context.Context, eventID, spotID string) (*models.Spot, error) {
	var spot models.Spot
	err := r.db.WithContext(ctx).Where("id = ? AND event_id = ?", spotID, eventID).First(&spot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

func (r *SpotRepository) InsertSpot(ctx context.Context, spot *models.Spot) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(spot).Error; err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("%w: %s", models.ErrSpotAlreadyExists, spot.Name)
		}
		return err
	}
	return nil
}

// UpdateSpotByEventAndID 查無資料時回傳 gorm.ErrRecordNotFound
func (r *SpotRepository) UpdateSpotByEventAndID(ctx context.Context, eventID, spotID string, patch models.SpotPatch) (*models.Spot, error) {
	var spot models.Spot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND event_id = ?", spotID, eventID).First(&spot).Error; err != nil {
			return err
		}
		if len(patch) == 0 {
			return nil
		}
		if err := tx.Model(&spot).Updates(map[string]interface{}(patch)).Error; err != nil {
			if isDuplicateKey(err) {
				return fmt.Errorf("%w: %v", models.ErrSpotAlreadyExists, patch["name"])
			}
			return err
		}
		return tx.Where("id = ?", spotID).First(&spot).Error
	})
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

// DeleteSpotByEventAndID 查無資料時回傳 gorm.ErrRecordNotFound
func (r *SpotRepository) DeleteSpotByEventAndID(ctx context.Context, eventID, spotID string) (*models.Spot, error) {
	var spot models.Spot
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND event_id = ?", spotID, eventID).First(&spot).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Spot{}, "id = ?", spot.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return &spot, nil
}

// CountSpotsByStatus 依活動與狀態分組計數
func (r *SpotRepository) CountSpotsByStatus(ctx context.Context) ([]models.StatusCount, error) {
	var counts []models.StatusCount
	err := r.db.WithContext(ctx).
		Model(&models.Spot{}).
		Select("event_id, status, COUNT(*) AS total").
		Group("event_id, status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func findEvent(db *gorm.DB, id string) (*models.Event, error) {
	var event models.Event
	err := db.Where("id = ?", id).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}
