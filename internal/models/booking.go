package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Identificador público (uuid), usado na confirmação do cliente
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientPhone string `gorm:"size:20;not null" json:"client_phone"`

	ServiceName  string  `gorm:"size:100;not null" json:"service_name"`
	ServicePrice float64 `json:"service_price"`

	// Data YYYY-MM-DD e slot HH:MM, chave composta "soft" entre ativos
	Date     string `gorm:"size:10;not null;index:idx_bookings_date_slot" json:"date"`
	TimeSlot string `gorm:"size:5;not null;index:idx_bookings_date_slot" json:"time_slot"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	FinalizedAt *time.Time `json:"finalized_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
