package booking

import (
	"context"
	"time"

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

// Espelho do modal de edição do painel: o formulário manda o conjunto
// completo de campos
type UpdateBookingInput struct {
	ClientName  string
	ClientPhone string
	ServiceName string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

type UpdateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateBooking) Execute(
	ctx context.Context,
	bookingID uint,
	in UpdateBookingInput,
) (*models.Booking, error) {

	if in.ClientName == "" || in.ClientPhone == "" || in.ServiceName == "" ||
		in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	if err := domain.CanEdit(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	cfg := loadConfigOrDefault(ctx, uc.repo)

	date, err := time.ParseInLocation(
		"2006-01-02",
		in.Date,
		timezone.Location(cfg.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	moved := in.Date != b.Date || in.Time != b.TimeSlot

	// mover o agendamento refaz toda a checagem de disponibilidade
	if moved {
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

		existing, err := uc.repo.ListBookingsForDate(ctx, in.Date)
		if err != nil {
			return nil, err
		}

		for _, other := range existing {
			if other.ID == b.ID {
				continue
			}
			if domain.Status(other.Status) == domain.StatusCancelled {
				continue
			}
			if other.TimeSlot == in.Time {
				return nil, httperr.ErrBusiness("slot_taken")
			}
		}
	}

	if in.ServiceName != b.ServiceName {
		svc, err := uc.repo.GetServiceByName(ctx, in.ServiceName)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		b.ServiceName = svc.Name
		b.ServicePrice = svc.Price
	}

	b.ClientName = in.ClientName
	b.ClientPhone = in.ClientPhone
	b.Date = in.Date
	b.TimeSlot = in.Time

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
