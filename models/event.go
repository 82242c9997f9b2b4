package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Event struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Date        time.Time `json:"date" gorm:"type:datetime;not null"`
	Price       float64   `json:"price" gorm:"type:decimal(10,2);not null;default:0"`
	Spots       []Spot    `json:"-" gorm:"foreignKey:EventID;references:ID"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Event) TableName() string {
	return "events"
}

// BeforeCreate 未指定 ID 時生成 UUID
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// CreateEventRequest 用於 POST 新增活動
type CreateEventRequest struct {
	Name        string    `json:"name" binding:"required,max=255"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Price       float64   `json:"price" binding:"gte=0"`
}

// UpdateEventRequest 用於 PATCH 更新，nil 欄位不更新
type UpdateEventRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description"`
	Date        *time.Time `json:"date"`
	Price       *float64   `json:"price" binding:"omitempty,gte=0"`
}

// Fields 轉為 gorm Updates 使用的欄位表
func (r UpdateEventRequest) Fields() map[string]interface{} {
	fields := make(map[string]interface{})
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	return fields
}
