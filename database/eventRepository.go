package database

import (
	"context"
	"fmt"
	"strings"

	"partnerapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepository 以 GORM 實作活動存取與預約
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) InsertEvent(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(event).Error
}

func (r *EventRepository) FindEvents(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).Order("date ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *EventRepository) FindEventByID(ctx context.Context, id string) (*models.Event, error) {
	return findEvent(r.db.WithContext(ctx), id)
}

// UpdateEvent 查無資料時回傳 gorm.ErrRecordNotFound
func (r *EventRepository) UpdateEvent(ctx context.Context, id string, fields map[string]interface{}) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&event).Error; err != nil {
			return err
		}
		if len(fields) == 0 {
			return nil
		}
		if err := tx.Model(&event).Updates(fields).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).First(&event).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// DeleteEvent 在同一交易內刪除票券、預約紀錄、車位與活動
func (r *EventRepository) DeleteEvent(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&event).Error; err != nil {
			return err
		}

		var spotIDs []string
		if err := tx.Model(&models.Spot{}).Where("event_id = ?", id).Pluck("id", &spotIDs).Error; err != nil {
			return err
		}
		if len(spotIDs) > 0 {
			if err := tx.Where("spot_id IN ?", spotIDs).Delete(&models.Ticket{}).Error; err != nil {
				return fmt.Errorf("failed to delete tickets: %w", err)
			}
			if err := tx.Where("spot_id IN ?", spotIDs).Delete(&models.ReservationHistory{}).Error; err != nil {
				return fmt.Errorf("failed to delete reservation history: %w", err)
			}
			if err := tx.Where("event_id = ?", id).Delete(&models.Spot{}).Error; err != nil {
				return fmt.Errorf("failed to delete spots: %w", err)
			}
		}
		return tx.Delete(&models.Event{}, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// ReserveSpots 以條件更新 available -> reserved，任一失敗則整筆回滾
func (r *EventRepository) ReserveSpots(ctx context.Context, event *models.Event, names []string, kind models.TicketKind, email string) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var spots []models.Spot
		if err := tx.Where("event_id = ? AND name IN ?", event.ID, names).Find(&spots).Error; err != nil {
			return err
		}

		if len(spots) != len(names) {
			found := make(map[string]bool, len(spots))
			for _, spot := range spots {
				found[spot.Name] = true
			}
			var missing []string
			for _, name := range names {
				if !found[name] {
					missing = append(missing, name)
				}
			}
			return fmt.Errorf("%w: %s", models.ErrSpotNotFound, strings.Join(missing, ", "))
		}

		for i := range spots {
			spot := &spots[i]

			res := tx.Model(&models.Spot{}).
				Where("id = ? AND status = ?", spot.ID, models.SpotAvailable).
				Update("status", models.SpotReserved)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", models.ErrSpotNotAvailable, spot.Name)
			}

			history := models.ReservationHistory{
				Email:      email,
				TicketKind: kind,
				SpotID:     spot.ID,
				Status:     models.SpotReserved,
			}
			if err := tx.Create(&history).Error; err != nil {
				return fmt.Errorf("failed to record reservation: %w", err)
			}

			ticket, err := models.NewTicket(event, spot, kind, email)
			if err != nil {
				return err
			}
			if err := tx.Omit(clause.Associations).Create(ticket).Error; err != nil {
				return fmt.Errorf("failed to create ticket: %w", err)
			}
			tickets = append(tickets, *ticket)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tickets, nil
}
