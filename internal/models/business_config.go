package models

import "time"

// Configuração única da barbearia (linha id=1, só substituição, nunca deleção)
type BusinessConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OpeningTime     string `gorm:"size:5" json:"opening_time"`
	ClosingTime     string `gorm:"size:5" json:"closing_time"`
	SlotIntervalMin int    `json:"slot_interval_min"`

	// Dias abertos, convenção 0=domingo..6=sábado
	OpenWeekdays []int `gorm:"serializer:json;type:text" json:"open_weekdays"`

	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultBusinessConfig() BusinessConfig {
	return BusinessConfig{
		ID:              1,
		OpeningTime:     "09:00",
		ClosingTime:     "18:30",
		SlotIntervalMin: 30,
		OpenWeekdays:    []int{1, 2, 3, 4, 5, 6},
		Timezone:        "America/Sao_Paulo",
	}
}
