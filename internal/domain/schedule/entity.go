package schedule

import (
	"time"

	"github.com/macicado/barberagenda/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// finalized e cancelled são estados absorventes: não há volta para active

func Cancel(b *models.Booking, now time.Time) error {
	if err := CanCancel(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusCancelled)
	b.CancelledAt = &now
	return nil
}

func Finalize(b *models.Booking, now time.Time) error {
	if err := CanFinalize(Status(b.Status)); err != nil {
		return err
	}

	b.Status = string(StatusFinalized)
	b.FinalizedAt = &now
	return nil
}
