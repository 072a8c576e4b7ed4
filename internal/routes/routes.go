package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookably/appointment-api/internal/audit"
	"github.com/bookably/appointment-api/internal/config"
	"github.com/bookably/appointment-api/internal/handlers"
	infraRepo "github.com/bookably/appointment-api/internal/infra/repository"
	"github.com/bookably/appointment-api/internal/middleware"
	"github.com/bookably/appointment-api/internal/tokenstore"
	ucAppointment "github.com/bookably/appointment-api/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens tokenstore.Store, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	getAppointmentUC := ucAppointment.NewGetAppointment(appointmentRepo)

	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, tokens, cfg)

	clientHandler := handlers.NewClientHandler(db, auditDispatcher)
	providerHandler := handlers.NewProviderHandler(db, auditDispatcher)
	serviceHandler := handlers.NewServiceHandler(db, auditDispatcher)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		deleteAppointmentUC,
		getAppointmentUC,
		listAppointmentsUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg, tokens))
		{
			secured.POST("/logout", authHandler.Logout)
			secured.GET("/user", authHandler.GetUser)

			// ------------------------------
			// CLIENTS
			// ------------------------------
			secured.GET("/clients", clientHandler.List)
			secured.POST("/clients", clientHandler.Create)
			secured.GET("/clients/:id", clientHandler.Show)
			secured.PUT("/clients/:id", clientHandler.Replace)
			secured.PATCH("/clients/:id", clientHandler.Patch)
			secured.DELETE("/clients/:id", clientHandler.Delete)
			secured.GET("/client/profile", clientHandler.Profile)

			// ------------------------------
			// PROVIDERS
			// ------------------------------
			secured.GET("/providers", providerHandler.List)
			secured.POST("/providers", providerHandler.Create)
			secured.GET("/providers/:id", providerHandler.Show)
			secured.PUT("/providers/:id", providerHandler.Replace)
			secured.PATCH("/providers/:id", providerHandler.Patch)
			secured.DELETE("/providers/:id", providerHandler.Delete)
			secured.POST("/providers/:id/services", providerHandler.AttachServices)
			secured.GET("/providers/:id/services", providerHandler.ListServices)
			secured.GET("/provider/profile", providerHandler.Profile)

			// ------------------------------
			// SERVICES
			// ------------------------------
			secured.GET("/services", serviceHandler.List)
			secured.POST("/services", serviceHandler.Create)
			secured.GET("/services/:id", serviceHandler.Show)
			secured.PUT("/services/:id", serviceHandler.Replace)
			secured.PATCH("/services/:id", serviceHandler.Patch)
			secured.DELETE("/services/:id", serviceHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.List)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.GET("/appointments/:id", appointmentHandler.Show)
			secured.PUT("/appointments/:id", appointmentHandler.Replace)
			secured.PATCH("/appointments/:id", appointmentHandler.Patch)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
