package settings

import (
	"context"
	"time"

	"github.com/macicado/barberagenda/internal/audit"
	domain "github.com/macicado/barberagenda/internal/domain/schedule"
	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/models"
	"github.com/macicado/barberagenda/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

// Campos nil não são alterados: o painel manda só o que mudou
type UpdateSettingsInput struct {
	OpeningTime     *string `json:"opening_time"`
	ClosingTime     *string `json:"closing_time"`
	SlotIntervalMin *int    `json:"slot_interval_min"`
	OpenWeekdays    *[]int  `json:"open_weekdays"`
	Timezone        *string `json:"timezone"`
}

// ======================================================
// USE CASE
// ======================================================

type UpdateSettings struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateSettings(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateSettings {
	return &UpdateSettings{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateSettings) Execute(
	ctx context.Context,
	in UpdateSettingsInput,
) (*models.BusinessConfig, error) {

	cfg, err := NewGetSettings(uc.repo).Execute(ctx)
	if err != nil {
		return nil, err
	}

	if in.OpeningTime != nil {
		cfg.OpeningTime = *in.OpeningTime
	}
	if in.ClosingTime != nil {
		cfg.ClosingTime = *in.ClosingTime
	}
	if in.SlotIntervalMin != nil {
		cfg.SlotIntervalMin = *in.SlotIntervalMin
	}
	if in.OpenWeekdays != nil {
		cfg.OpenWeekdays = *in.OpenWeekdays
	}
	if in.Timezone != nil {
		cfg.Timezone = *in.Timezone
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	if err := uc.repo.SaveConfig(ctx, cfg); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action: "config_updated",
		Entity: "business_config",
		Metadata: map[string]any{
			"opening_time":      cfg.OpeningTime,
			"closing_time":      cfg.ClosingTime,
			"slot_interval_min": cfg.SlotIntervalMin,
			"open_weekdays":     cfg.OpenWeekdays,
			"timezone":          cfg.Timezone,
		},
	})

	return cfg, nil
}

func validate(cfg *models.BusinessConfig) error {
	opening, err := time.Parse("15:04", cfg.OpeningTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	closing, err := time.Parse("15:04", cfg.ClosingTime)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	if !closing.After(opening) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	if cfg.SlotIntervalMin < domain.MinSlotIntervalMin {
		return httperr.ErrBusiness("invalid_interval")
	}

	if len(cfg.OpenWeekdays) == 0 {
		return httperr.ErrBusiness("invalid_weekdays")
	}
	for _, wd := range cfg.OpenWeekdays {
		if wd < 0 || wd > 6 {
			return httperr.ErrBusiness("invalid_weekdays")
		}
	}

	if !timezone.IsValid(cfg.Timezone) {
		return httperr.ErrBusiness("invalid_timezone")
	}

	return nil
}
