package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TicketKind string

const (
	TicketFull TicketKind = "full"
	TicketHalf TicketKind = "half"
)

func (k TicketKind) Valid() bool {
	return k == TicketFull || k == TicketHalf
}

type Ticket struct {
	ID         string     `json:"id" gorm:"primaryKey;type:char(36)"`
	Email      string     `json:"email" gorm:"type:varchar(255);not null"`
	TicketKind TicketKind `json:"ticket_kind" gorm:"type:varchar(10);not null"`
	Price      float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	SpotID     string     `json:"spot_id" gorm:"type:char(36);not null;index"`
	Spot       Spot       `json:"-" gorm:"foreignKey:SpotID;references:ID"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}

// NewTicket 依活動票價開票，半票價格減半
func NewTicket(event *Event, spot *Spot, kind TicketKind, email string) (*Ticket, error) {
	if !kind.Valid() {
		return nil, ErrInvalidTicketKind
	}

	price := event.Price
	if kind == TicketHalf {
		price /= 2
	}

	return &Ticket{
		Email:      email,
		TicketKind: kind,
		Price:      price,
		SpotID:     spot.ID,
	}, nil
}

// ReservationHistory 預約紀錄
type ReservationHistory struct {
	ID         uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	Email      string     `json:"email" gorm:"type:varchar(255);not null"`
	TicketKind TicketKind `json:"ticket_kind" gorm:"type:varchar(10);not null"`
	SpotID     string     `json:"spot_id" gorm:"type:char(36);not null;index"`
	Status     SpotStatus `json:"status" gorm:"type:varchar(20);not null"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (ReservationHistory) TableName() string {
	return "reservation_histories"
}

// ReserveSpotRequest 用於 POST 預約
type ReserveSpotRequest struct {
	Spots      []string   `json:"spots" binding:"required,min=1,dive,required"`
	TicketKind TicketKind `json:"ticket_kind" binding:"required,ticketkind"`
	Email      string     `json:"email" binding:"required,email"`
}
