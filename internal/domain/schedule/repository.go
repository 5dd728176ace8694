package schedule

import (
	"context"

	"github.com/macicado/barberagenda/internal/models"
)

// Colaborador de persistência: o calculador em si não faz I/O
type Repository interface {
	// -------- Booking --------
	ListBookingsForDate(
		ctx context.Context,
		date string,
	) ([]models.Booking, error)

	ListBookingsForMonth(
		ctx context.Context,
		month string,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Config --------
	GetConfig(
		ctx context.Context,
	) (*models.BusinessConfig, error)

	SaveConfig(
		ctx context.Context,
		cfg *models.BusinessConfig,
	) error

	// -------- Service catalog --------
	GetServiceByName(
		ctx context.Context,
		name string,
	) (*models.Service, error)
}
