package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/macicado/barberagenda/internal/httperr"
	"github.com/macicado/barberagenda/internal/httpresp"
	"github.com/macicado/barberagenda/internal/timezone"
	"github.com/macicado/barberagenda/internal/usecase/booking"
)

type DashboardHandler struct {
	summary *booking.MonthlySummary
}

func NewDashboardHandler(summary *booking.MonthlySummary) *DashboardHandler {
	return &DashboardHandler{summary: summary}
}

// Summary responde GET ?month=YYYY-MM; sem parâmetro, usa o mês atual.
func (h *DashboardHandler) Summary(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		month = timezone.NowIn(timezone.DefaultTimezone).Format("2006-01")
	}

	if _, err := time.Parse("2006-01", month); err != nil {
		httperr.BadRequest(c, "invalid_month", "Mês inválido (YYYY-MM).")
		return
	}

	out, err := h.summary.Execute(c.Request.Context(), month)
	if err != nil {
		httperr.Internal(c, "dashboard_failed", "Erro ao montar o resumo.")
		return
	}

	httpresp.OK(c, out)
}
