package settings

import (
	"context"

	domain "github.com/macicado/barberagenda/internal/domain/schedule"
	"github.com/macicado/barberagenda/internal/models"
)

type GetSettings struct {
	repo domain.Repository
}

func NewGetSettings(repo domain.Repository) *GetSettings {
	return &GetSettings{repo: repo}
}

// Execute devolve a configuração vigente. Campos ausentes ou inválidos
// caem no padrão — o painel nunca recebe uma configuração quebrada.
func (uc *GetSettings) Execute(ctx context.Context) (*models.BusinessConfig, error) {
	cfg, err := uc.repo.GetConfig(ctx)
	if err != nil || cfg == nil {
		def := models.DefaultBusinessConfig()
		return &def, nil
	}

	def := models.DefaultBusinessConfig()

	if cfg.OpeningTime == "" {
		cfg.OpeningTime = def.OpeningTime
	}
	if cfg.ClosingTime == "" {
		cfg.ClosingTime = def.ClosingTime
	}
	if cfg.SlotIntervalMin <= 0 {
		cfg.SlotIntervalMin = def.SlotIntervalMin
	}
	if len(cfg.OpenWeekdays) == 0 {
		cfg.OpenWeekdays = def.OpenWeekdays
	}
	if cfg.Timezone == "" {
		cfg.Timezone = def.Timezone
	}

	return cfg, nil
}
