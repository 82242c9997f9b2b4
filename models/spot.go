package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SpotStatus string

const (
	SpotAvailable SpotStatus = "available"
	SpotReserved  SpotStatus = "reserved"
	SpotOccupied  SpotStatus = "occupied"
)

// Valid 檢查狀態是否在列舉內
func (s SpotStatus) Valid() bool {
	switch s {
	case SpotAvailable, SpotReserved, SpotOccupied:
		return true
	}
	return false
}

type Spot struct {
	ID        string     `json:"id" gorm:"primaryKey;type:char(36)"`
	EventID   string     `json:"event_id" gorm:"type:char(36);not null;uniqueIndex:idx_spot_event_name"`
	Name      string     `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_spot_event_name"`
	Status    SpotStatus `json:"status" gorm:"type:varchar(20);not null;default:available"`
	Event     Event      `json:"-" gorm:"foreignKey:EventID;references:ID"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (Spot) TableName() string {
	return "spots"
}

// BeforeCreate 未指定 ID 時生成 UUID
func (s *Spot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// CreateSpotRequest 用於 POST 新增車位；status 會被忽略，一律為 available
type CreateSpotRequest struct {
	Name   string     `json:"name" binding:"required,max=100"`
	Status SpotStatus `json:"status" binding:"omitempty,spotstatus"`
}

// UpdateSpotRequest 用於 PATCH 更新，nil 欄位不更新
type UpdateSpotRequest struct {
	Name   *string     `json:"name" binding:"omitempty,min=1,max=100"`
	Status *SpotStatus `json:"status" binding:"omitempty,spotstatus"`
}

// SpotPatch 是寫入資料庫的欄位表
type SpotPatch map[string]interface{}

// Patch 只取有提供的欄位
func (r UpdateSpotRequest) Patch() SpotPatch {
	patch := make(SpotPatch)
	if r.Name != nil {
		patch["name"] = *r.Name
	}
	if r.Status != nil {
		patch["status"] = *r.Status
	}
	return patch
}

// StatusCount 每個活動各狀態的車位數
type StatusCount struct {
	EventID string     `json:"event_id"`
	Status  SpotStatus `json:"status"`
	Total   int64      `json:"total"`
}
