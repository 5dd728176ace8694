package schedule

import "github.com/macicado/barberagenda/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusActive    Status = "active"
	StatusFinalized Status = "finalized"
	StatusCancelled Status = "cancelled"
)

// Limites de configuração (aplicados na borda admin, nunca no gerador)
const MinSlotIntervalMin = 5

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanFinalize define se um agendamento pode ser finalizado
func CanFinalize(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanEdit define se os dados de um agendamento ainda podem mudar
func CanEdit(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusActive
}
