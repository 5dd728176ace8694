package booking

import (
	"context"

	"github.com/macicado/barberagenda/internal/audit"
	domain "github.com/macicado/barberagenda/internal/domain/schedule"
	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/models"
	"github.com/macicado/barberagenda/internal/timezone"
)

type FinalizeBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFinalizeBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FinalizeBooking {
	return &FinalizeBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *FinalizeBooking) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	cfg := loadConfigOrDefault(ctx, uc.repo)

	now := timezone.NowIn(cfg.Timezone)
	if err := domain.Finalize(b, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_finalized",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
