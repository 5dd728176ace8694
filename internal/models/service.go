package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name   string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Price  float64 `json:"price"`
	Active bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Catálogo inicial, criado na primeira migração
func DefaultServices() []Service {
	return []Service{
		{Name: "Corte Tradicional", Price: 60, Active: true},
		{Name: "Barba Completa", Price: 45, Active: true},
		{Name: "Corte + Barba", Price: 95, Active: true},
		{Name: "Degradê Premium", Price: 75, Active: true},
		{Name: "Pigmentação de Barba", Price: 55, Active: true},
		{Name: "Tratamento Capilar", Price: 50, Active: true},
	}
}
