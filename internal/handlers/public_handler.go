package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/httpresp"
	"github.com/macicado/barberagenda/internal/models"
	"github.com/macicado/barberagenda/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// PublicHandler atende o site do cliente: catálogo, disponibilidade
// e criação de agendamento. Nenhuma rota exige autenticação.
type PublicHandler struct {
	db           *gorm.DB
	availability *booking.GetAvailability
	create       *booking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	availability *booking.GetAvailability,
	create *booking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// validação de conteúdo fica no caso de uso, que devolve os códigos
// de negócio (missing_fields, invalid_phone...)
type CreateBookingRequest struct {
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceName string `json:"service_name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// ======================================================
// SERVICES
// ======================================================

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.
		Where("active = ?", true).
		Order("id ASC").
		Find(&services).Error; err != nil {

		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	httpresp.List(c, services)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data (YYYY-MM-DD).")
		return
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular disponibilidade.")
		return
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE BOOKING
// ======================================================

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), booking.CreateBookingInput{
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

	c.JSON(http.StatusCreated, b)
}
