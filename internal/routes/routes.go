package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	redis "github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/agendopro/agendopro-api/internal/audit"
	"github.com/agendopro/agendopro-api/internal/auth"
	"github.com/agendopro/agendopro-api/internal/config"
	"github.com/agendopro/agendopro-api/internal/handlers"
	infraRepo "github.com/agendopro/agendopro-api/internal/infra/repository"
	"github.com/agendopro/agendopro-api/internal/middleware"
	"github.com/agendopro/agendopro-api/internal/notify/whatsapp"
	"github.com/agendopro/agendopro-api/internal/settings"
	"github.com/agendopro/agendopro-api/internal/storage"
	ucAppointment "github.com/agendopro/agendopro-api/internal/usecase/appointment"
	"github.com/agendopro/agendopro-api/internal/webhooks/payment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, rdb *redis.Client) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	settingsService := settings.NewService(db)
	notifier := whatsapp.NewNotifier(settingsService)

	fileStorage := storage.New(cfg)
	loginThrottle := auth.NewThrottle(rdb)

	paymentResolver, err := payment.NewResolver(cfg.MPAccessToken)
	if err != nil {
		log.Println("mercado pago resolver desativado:", err)
	}

	// ======================================================
	// 🧠 USE CASES — APPOINTMENTS
	// ======================================================
	bookAppointmentUC := ucAppointment.NewBookAppointment(
		appointmentRepo,
		auditDispatcher,
		notifier,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, loginThrottle)
	meHandler := handlers.NewMeHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)

	appointmentHandler := handlers.NewAppointmentHandler(
		bookAppointmentUC,
		transitionAppointmentUC,
		availabilityUC,
		listAppointmentsUC,
	)

	planHandler := handlers.NewPlanHandler(db)
	medicalRecordHandler := handlers.NewMedicalRecordHandler(db, fileStorage, auditDispatcher)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	calendarHandler := handlers.NewCalendarHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	adminHandler := handlers.NewAdminHandler(db)
	superAdminHandler := handlers.NewSuperAdminHandler(db, auditDispatcher)

	paymentWebhookHandler := payment.NewHandler(db, auditDispatcher, paymentResolver)
	whatsappHandler := whatsapp.NewHandler(notifier)

	// ======================================================
	// 🌐 WEBHOOKS
	// ======================================================
	r.POST("/webhooks/payment", paymentWebhookHandler.Handle)
	r.POST("/webhooks/whatsapp-notify", middleware.AuthMiddleware(cfg), whatsappHandler.Notify)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
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
			secured.PATCH("/me", meHandler.UpdateMe)

			secured.GET("/me/plan", planHandler.GetMyPlan)
			secured.GET("/me/permissions", calendarHandler.Permissions)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/me/appointments/availability", appointmentHandler.Availability)
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)

			// ------------------------------
			// PRONTUÁRIOS
			// ------------------------------
			secured.GET("/me/medical-records", medicalRecordHandler.List)
			secured.POST("/me/medical-records", medicalRecordHandler.Create)
			secured.GET("/me/medical-records/:id", medicalRecordHandler.Get)
			secured.POST("/me/medical-records/:id/files", medicalRecordHandler.UploadFile)
			secured.GET("/me/medical-records/:id/files/:fileID", medicalRecordHandler.FileURL)
			secured.DELETE("/me/medical-records/:id/files/:fileID", medicalRecordHandler.DeleteFile)

			// ------------------------------
			// SETTINGS / CALENDÁRIOS
			// ------------------------------
			secured.GET("/me/settings", settingsHandler.ListUser)
			secured.GET("/me/settings/:key", settingsHandler.GetUser)
			secured.PUT("/me/settings/:key", settingsHandler.PutUser)

			secured.GET("/me/calendars", calendarHandler.List)
			secured.POST("/me/calendars", calendarHandler.Create)
			secured.PATCH("/me/calendars/:id", calendarHandler.Update)
			secured.PUT("/me/calendars/:id/permissions", calendarHandler.PutPermissions)

			secured.GET("/me/audit-logs", auditLogsHandler.List)

			// ------------------------------
			// 🛡️ ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/statistics", adminHandler.Statistics)
				admin.GET("/settings", settingsHandler.ListSystem)
				admin.PUT("/settings/:key", settingsHandler.PutSystem)
			}

			// ------------------------------
			// 🛡️ SUPER ADMIN
			// ------------------------------
			superAdmin := secured.Group("/superadmin")
			superAdmin.Use(middleware.RequireRole("super_admin"))
			{
				superAdmin.GET("/statistics", superAdminHandler.Statistics)
				superAdmin.GET("/users", superAdminHandler.ListUsers)
				superAdmin.PATCH("/users/:id/plan", superAdminHandler.SetPlan)
				superAdmin.PATCH("/users/:id/active", superAdminHandler.SetActive)
				superAdmin.POST("/users/:id/reset-password", superAdminHandler.ResetPassword)
				superAdmin.GET("/audit-logs", auditLogsHandler.ListAll)
			}
		}
	}
}
