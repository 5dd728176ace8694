package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/macicado/barberagenda/internal/audit"
	"github.com/macicado/barberagenda/internal/config"
	"github.com/macicado/barberagenda/internal/handlers"
	"github.com/macicado/barberagenda/internal/infra/cache"
	infraRepo "github.com/macicado/barberagenda/internal/infra/repository"
	"github.com/macicado/barberagenda/internal/middleware"
	ucBooking "github.com/macicado/barberagenda/internal/usecase/booking"
	ucSettings "github.com/macicado/barberagenda/internal/usecase/settings"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestLogger())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	configCache := cache.NewConfigCache(rdb)
	bookingRepo := infraRepo.NewBookingGormRepository(db, configCache)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// 🧠 USE CASES — BOOKINGS
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(
		bookingRepo,
		auditDispatcher,
	)

	updateBookingUC := ucBooking.NewUpdateBooking(
		bookingRepo,
		auditDispatcher,
	)

	cancelBookingUC := ucBooking.NewCancelBooking(
		bookingRepo,
		auditDispatcher,
	)

	finalizeBookingUC := ucBooking.NewFinalizeBooking(
		bookingRepo,
		auditDispatcher,
	)

	listByDateUC := ucBooking.NewListBookingsByDate(bookingRepo)
	listByMonthUC := ucBooking.NewListBookingsByMonth(bookingRepo)
	monthlySummaryUC := ucBooking.NewMonthlySummary(bookingRepo)

	// ======================================================
	// 🧠 USE CASES — SETTINGS
	// ======================================================
	getSettingsUC := ucSettings.NewGetSettings(bookingRepo)

	updateSettingsUC := ucSettings.NewUpdateSettings(
		bookingRepo,
		auditDispatcher,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(cfg)

	publicHandler := handlers.NewPublicHandler(
		db,
		availabilityUC,
		createBookingUC,
	)

	bookingHandler := handlers.NewBookingHandler(
		listByDateUC,
		listByMonthUC,
		updateBookingUC,
		cancelBookingUC,
		finalizeBookingUC,
	)

	settingsHandler := handlers.NewSettingsHandler(
		db,
		getSettingsUC,
		updateSettingsUC,
		auditDispatcher,
	)

	dashboardHandler := handlers.NewDashboardHandler(monthlySummaryUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (site do cliente)
		// ------------------------------
		api.GET("/services", publicHandler.ListServices)
		api.GET("/availability", publicHandler.GetAvailability)
		api.POST("/bookings", publicHandler.CreateBooking)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/admin/login", authHandler.Login)

		// ------------------------------
		// 🔐 PAINEL ADMINISTRATIVO
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg))
		{
			admin.GET("/bookings", bookingHandler.List)
			admin.PATCH("/bookings/:id", bookingHandler.Update)
			admin.PATCH("/bookings/:id/cancel", bookingHandler.Cancel)
			admin.PATCH("/bookings/:id/finalize", bookingHandler.Finalize)

			admin.GET("/settings", settingsHandler.Get)
			admin.PATCH("/settings", settingsHandler.Update)

			admin.POST("/services", settingsHandler.CreateService)
			admin.DELETE("/services/:id", settingsHandler.DeleteService)

			admin.GET("/dashboard", dashboardHandler.Summary)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
