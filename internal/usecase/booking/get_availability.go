package booking

import (
	"context"
	"time"

	domain "github.com/macicado/barberagenda/internal/domain/schedule"
	"github.com/macicado/barberagenda/internal/models"
)

type AvailabilityOutput struct {
	Date  string                    `json:"date"`
	Open  bool                      `json:"open"`
	Slots []domain.SlotAvailability `json:"slots"`
}

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) (*AvailabilityOutput, error) {

	cfg := loadConfigOrDefault(ctx, uc.repo)
	dateStr := date.Format("2006-01-02")

	if !domain.IsDateOpen(date, cfg.OpenWeekdays) {
		return &AvailabilityOutput{
			Date:  dateStr,
			Open:  false,
			Slots: []domain.SlotAvailability{},
		}, nil
	}

	slots := domain.GenerateSlots(
		cfg.OpeningTime,
		cfg.ClosingTime,
		cfg.SlotIntervalMin,
	)

	bookings, err := uc.repo.ListBookingsForDate(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	return &AvailabilityOutput{
		Date:  dateStr,
		Open:  true,
		Slots: domain.ClassifyOccupancy(slots, domain.OccupiedSlots(bookings)),
	}, nil
}

// loadConfigOrDefault nunca devolve erro: configuração ausente ou banco
// indisponível viram o default compilado. Intervalo não-positivo também
// é corrigido aqui, antes do gerador.
func loadConfigOrDefault(ctx context.Context, repo domain.Repository) models.BusinessConfig {
	def := models.DefaultBusinessConfig()

	cfg, err := repo.GetConfig(ctx)
	if err != nil || cfg == nil {
		return def
	}

	out := *cfg
	if out.OpeningTime == "" || out.ClosingTime == "" {
		out.OpeningTime = def.OpeningTime
		out.ClosingTime = def.ClosingTime
	}
	if out.SlotIntervalMin <= 0 {
		out.SlotIntervalMin = def.SlotIntervalMin
	}
	if len(out.OpenWeekdays) == 0 {
		out.OpenWeekdays = def.OpenWeekdays
	}
	if out.Timezone == "" {
		out.Timezone = def.Timezone
	}

	return out
}
