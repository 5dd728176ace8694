package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/macicado/barberagenda/internal/httperr"
)

var businessMessages = map[string]string{
	"missing_fields":    "Preencha todos os campos obrigatórios.",
	"invalid_phone":     "Telefone inválido.",
	"invalid_date":      "Data inválida.",
	"closed_day":        "A barbearia não abre nesse dia.",
	"invalid_slot":      "Horário fora da grade de atendimento.",
	"slot_taken":        "Horário já ocupado.",
	"service_not_found": "Serviço não encontrado.",
	"booking_not_found": "Agendamento não encontrado.",
	"invalid_state":     "Agendamento já cancelado ou finalizado.",
	"invalid_time":      "Horário inválido.",
	"invalid_time_range": "O fechamento precisa ser depois da abertura.",
	"invalid_interval":  "Intervalo de agenda inválido.",
	"invalid_weekdays":  "Dias de funcionamento inválidos.",
	"invalid_timezone":  "Fuso horário inválido.",
}

// writeBusinessError traduz erros de negócio dos casos de uso em
// respostas HTTP. Qualquer outro erro vira 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	be, ok := httperr.AnyBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	msg := businessMessages[be.Code]
	if msg == "" {
		msg = "Operação inválida."
	}

	switch be.Code {
	case "slot_taken", "invalid_state":
		httperr.Conflict(c, be.Code, msg)
	case "booking_not_found", "service_not_found":
		httperr.NotFound(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}
