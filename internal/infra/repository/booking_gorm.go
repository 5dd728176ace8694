package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/macicado/barberagenda/internal/domain/schedule"
	"github.com/macicado/barberagenda/internal/infra/cache"
	"github.com/macicado/barberagenda/internal/models"
)

type BookingGormRepository struct {
	db          *gorm.DB
	configCache *cache.ConfigCache
}

func NewBookingGormRepository(db *gorm.DB, configCache *cache.ConfigCache) *BookingGormRepository {
	return &BookingGormRepository{
		db:          db,
		configCache: configCache,
	}
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDate(
	ctx context.Context,
	date string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time_slot ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForMonth(
	ctx context.Context,
	month string,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("date LIKE ?", month+"-%").
		Order("date ASC, time_slot ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

// --------------------------------------------------
// Config
// --------------------------------------------------

func (r *BookingGormRepository) GetConfig(
	ctx context.Context,
) (*models.BusinessConfig, error) {

	if cfg := r.configCache.Get(ctx); cfg != nil {
		return cfg, nil
	}

	var cfg models.BusinessConfig
	if err := r.db.WithContext(ctx).First(&cfg, 1).Error; err != nil {
		return nil, err
	}

	r.configCache.Set(ctx, &cfg)
	return &cfg, nil
}

func (r *BookingGormRepository) SaveConfig(
	ctx context.Context,
	cfg *models.BusinessConfig,
) error {

	cfg.ID = 1
	if err := r.db.WithContext(ctx).Save(cfg).Error; err != nil {
		return err
	}

	r.configCache.Invalidate(ctx)
	return nil
}

// --------------------------------------------------
// Service catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ? AND active = true", name).
		First(&svc).Error; err != nil {
		return nil, err
	}

	return &svc, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
