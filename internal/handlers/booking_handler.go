package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/httpresp"
	"github.com/macicado/barberagenda/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler é a agenda do painel administrativo.
type BookingHandler struct {
	listByDate  *booking.ListBookingsByDate
	listByMonth *booking.ListBookingsByMonth
	update      *booking.UpdateBooking
	cancel      *booking.CancelBooking
	finalize    *booking.FinalizeBooking
}

func NewBookingHandler(
	listByDate *booking.ListBookingsByDate,
	listByMonth *booking.ListBookingsByMonth,
	update *booking.UpdateBooking,
	cancel *booking.CancelBooking,
	finalize *booking.FinalizeBooking,
) *BookingHandler {
	return &BookingHandler{
		listByDate:  listByDate,
		listByMonth: listByMonth,
		update:      update,
		cancel:      cancel,
		finalize:    finalize,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// O modal de edição manda sempre o formulário inteiro
type UpdateBookingRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ======================================================
// HELPERS
// ======================================================

func bookingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// ======================================================
// LIST (?date=YYYY-MM-DD ou ?month=YYYY-MM)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	date := c.Query("date")
	month := c.Query("month")

	switch {
	case date != "":
		bookings, err := h.listByDate.Execute(c.Request.Context(), date)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
			return
		}
		httpresp.List(c, bookings)

	case month != "":
		bookings, err := h.listByMonth.Execute(c.Request.Context(), month)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar agendamentos.")
			return
		}
		httpresp.List(c, bookings)

	default:
		httperr.BadRequest(c, "missing_period", "Informe date ou month.")
	}
}

// ======================================================
// UPDATE
// ======================================================

func (h *BookingHandler) Update(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.update.Execute(c.Request.Context(), id, booking.UpdateBookingInput{
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ServiceName: req.ServiceName,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

// ======================================================
// CANCEL / FINALIZE
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.cancel.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}

func (h *BookingHandler) Finalize(c *gin.Context) {
	id, ok := bookingIDParam(c)
	if !ok {
		return
	}

	b, err := h.finalize.Execute(c.Request.Context(), id)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, b)
}
