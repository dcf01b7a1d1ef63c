package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/glowdesk/salon-scheduler/internal/audit"
	"github.com/glowdesk/salon-scheduler/internal/config"
	"github.com/glowdesk/salon-scheduler/internal/handlers"
	"github.com/glowdesk/salon-scheduler/internal/idempotency"
	infraRepo "github.com/glowdesk/salon-scheduler/internal/infra/repository"
	"github.com/glowdesk/salon-scheduler/internal/middleware"
	ucAppointment "github.com/glowdesk/salon-scheduler/internal/usecase/appointment"
	"github.com/glowdesk/salon-scheduler/internal/usecase/scheduling"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	idemGuard := idempotency.New(rdb)
	publicLimiter := middleware.NewRateLimiter(5, 10)

	// ======================================================
	// 🧠 USE CASES — DISPONIBILIDADE
	// ======================================================
	checkAvailabilityUC := scheduling.NewCheckAvailability(scheduleRepo)
	listSlotsUC := scheduling.NewListSlots(scheduleRepo)
	validateMoveUC := scheduling.NewValidateMove(scheduleRepo)

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	moveAppointmentUC := ucAppointment.NewMoveAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	completeAppointmentUC := ucAppointment.NewCompleteAppointment(
		scheduleRepo,
		auditDispatcher,
	)

	markNoShowUC := ucAppointment.NewMarkNoShow(
		scheduleRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		scheduleRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		scheduleRepo,
	)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	salonHandler := handlers.NewSalonHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	staffScheduleHandler := handlers.NewStaffScheduleHandler(db)
	timeOffHandler := handlers.NewTimeOffHandler(db, auditDispatcher)

	availabilityHandler := handlers.NewAvailabilityHandler(
		checkAvailabilityUC,
		listSlotsUC,
		validateMoveUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		moveAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		markNoShowUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	publicHandler := handlers.NewPublicHandler(
		db,
		listSlotsUC,
		createAppointmentUC,
		idemGuard,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA (COM RATE LIMIT)
		// ------------------------------
		publicAPI := api.Group("/public")
		publicAPI.Use(publicLimiter.Middleware())
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/slots", publicHandler.SlotsForClient)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
			publicAPI.GET("/:slug/appointments/:ref", publicHandler.GetByRef)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/salon", salonHandler.GetMeSalon)
			secured.PATCH("/me/salon",
				middleware.RequirePermission("salon:manage"),
				salonHandler.UpdateMeSalon)

			secured.GET("/me/clients", clientHandler.List)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services",
				middleware.RequirePermission("services:manage"),
				serviceHandler.Create)
			secured.PATCH("/me/services/:id",
				middleware.RequirePermission("services:manage"),
				serviceHandler.Update)

			// ------------------------------
			// AGENDA SEMANAL
			// ------------------------------
			secured.GET("/me/schedule", staffScheduleHandler.GetMine)
			secured.GET("/staff/:id/schedule",
				middleware.RequirePermission("schedules:manage"),
				staffScheduleHandler.Get)
			secured.PUT("/staff/:id/schedule",
				middleware.RequirePermission("schedules:manage"),
				staffScheduleHandler.Put)

			// ------------------------------
			// FOLGAS
			// ------------------------------
			secured.POST("/me/time-off",
				middleware.RequirePermission("timeoff:request"),
				timeOffHandler.Create)
			secured.GET("/me/time-off", timeOffHandler.ListMine)
			secured.GET("/time-off",
				middleware.RequirePermission("timeoff:decide"),
				timeOffHandler.List)
			secured.PATCH("/time-off/:id/approve",
				middleware.RequirePermission("timeoff:decide"),
				timeOffHandler.Approve)
			secured.PATCH("/time-off/:id/reject",
				middleware.RequirePermission("timeoff:decide"),
				timeOffHandler.Reject)

			// ------------------------------
			// DISPONIBILIDADE
			// ------------------------------
			secured.POST("/availability/check", availabilityHandler.Check)
			secured.GET("/availability/slots", availabilityHandler.Slots)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			appointmentsWrite := middleware.RequirePermission("appointments:write")

			secured.POST("/me/appointments", appointmentsWrite, appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.POST("/me/appointments/:id/validate-move", availabilityHandler.ValidateMove)
			secured.PATCH("/me/appointments/:id/move", appointmentsWrite, appointmentHandler.Move)
			secured.PATCH("/me/appointments/:id/cancel", appointmentsWrite, appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentsWrite, appointmentHandler.Complete)
			secured.PATCH("/me/appointments/:id/no-show", appointmentsWrite, appointmentHandler.NoShow)

			secured.GET("/me/audit-logs",
				middleware.RequirePermission("audit:read"),
				auditLogsHandler.List)
		}
	}
}
