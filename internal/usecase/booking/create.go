package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/macicado/barberagenda/internal/audit"
	domain "github.com/macicado/barberagenda/internal/domain/schedule"
	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/models"
	"github.com/macicado/barberagenda/internal/timezone"
	"github.com/macicado/barberagenda/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ClientName  string
	ClientPhone string
	ServiceName string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute é o contrato check-and-reserve: reconsulta os horários ocupados
// imediatamente antes do insert. Entre a checagem e o insert existe uma
// janela de corrida conhecida e aceita — duas submissões simultâneas podem
// passar; o índice composto em bookings permite fechar isso no banco.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.ClientName == "" || in.ClientPhone == "" || in.ServiceName == "" ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	// --------------------------------------------------
	// 2️⃣ Data no timezone da barbearia
	// --------------------------------------------------
	cfg := loadConfigOrDefault(ctx, uc.repo)

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(cfg.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// --------------------------------------------------
	// 3️⃣ Dia aberto + slot gerável
	// --------------------------------------------------
	if !domain.IsDateOpen(date, cfg.OpenWeekdays) {
		return nil, httperr.ErrBusiness("closed_day")
	}

	slots := domain.GenerateSlots(
		cfg.OpeningTime,
		cfg.ClosingTime,
		cfg.SlotIntervalMin,
	)
	if !domain.HasSlot(slots, in.Time) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	// --------------------------------------------------
	// 4️⃣ Serviço do catálogo (preço denormalizado)
	// --------------------------------------------------
	svc, err := uc.repo.GetServiceByName(ctx, in.ServiceName)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 5️⃣ Conflito de horário (check-then-act)
	// --------------------------------------------------
	existing, err := uc.repo.ListBookingsForDate(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	if domain.HasSlot(domain.OccupiedSlots(existing), in.Time) {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 6️⃣ Reserva
	// --------------------------------------------------
	b := &models.Booking{
		Reference:    uuid.NewString(),
		ClientName:   in.ClientName,
		ClientPhone:  in.ClientPhone,
		ServiceName:  svc.Name,
		ServicePrice: svc.Price,
		Date:         in.Date,
		TimeSlot:     in.Time,
		Status:       string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
