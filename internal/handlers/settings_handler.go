package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/macicado/barberagenda/internal/audit"
	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/models"
	"github.com/macicado/barberagenda/internal/usecase/settings"
)

// ======================================================
// HANDLER
// ======================================================

type SettingsHandler struct {
	db     *gorm.DB
	get    *settings.GetSettings
	update *settings.UpdateSettings
	audit  *audit.Dispatcher
}

func NewSettingsHandler(
	db *gorm.DB,
	get *settings.GetSettings,
	update *settings.UpdateSettings,
	dispatcher *audit.Dispatcher,
) *SettingsHandler {
	return &SettingsHandler{
		db:     db,
		get:    get,
		update: update,
		audit:  dispatcher,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateSettingsRequest struct {
	OpeningTime     *string `json:"opening_time,omitempty"`
	ClosingTime     *string `json:"closing_time,omitempty"`
	SlotIntervalMin *int    `json:"slot_interval_min,omitempty"`
	OpenWeekdays    *[]int  `json:"open_weekdays,omitempty"`
	Timezone        *string `json:"timezone,omitempty"`
}

type CreateServiceRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required,min=0"`
}

// ======================================================
// SETTINGS
// ======================================================

func (h *SettingsHandler) Get(c *gin.Context) {
	cfg, err := h.get.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_load_settings", "Erro ao carregar configurações.")
		return
	}

	c.JSON(http.StatusOK, cfg)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cfg, err := h.update.Execute(c.Request.Context(), settings.UpdateSettingsInput{
		OpeningTime:     req.OpeningTime,
		ClosingTime:     req.ClosingTime,
		SlotIntervalMin: req.SlotIntervalMin,
		OpenWeekdays:    req.OpenWeekdays,
		Timezone:        req.Timezone,
	})
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// ======================================================
// SERVICES (catálogo do painel)
// ======================================================

func (h *SettingsHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var count int64
	h.db.Model(&models.Service{}).Where("name = ?", name).Count(&count)
	if count > 0 {
		httperr.Conflict(c, "service_already_exists", "Já existe um serviço com esse nome.")
		return
	}

	svc := models.Service{
		Name:   name,
		Price:  req.Price,
		Active: true,
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Erro ao criar serviço.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "service_created",
		Entity:   "service",
		EntityID: &svc.ID,
		Metadata: map[string]any{"name": svc.Name, "price": svc.Price},
	})

	c.JSON(http.StatusCreated, svc)
}

// DeleteService desativa o serviço em vez de apagar: agendamentos
// antigos continuam referenciando o nome.
func (h *SettingsHandler) DeleteService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.
		Model(&models.Service{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_service", "Erro ao remover serviço.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	serviceID := uint(id)
	h.audit.Dispatch(audit.Event{
		Action:   "service_removed",
		Entity:   "service",
		EntityID: &serviceID,
	})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
