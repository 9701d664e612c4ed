package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/auth"
	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	reminderdomain "github.com/BruksfildServices01/dentismart/internal/domain/reminder"
	"github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/events"
	"github.com/BruksfildServices01/dentismart/internal/handlers"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/infra/lock"
	"github.com/BruksfildServices01/dentismart/internal/lead"
	"github.com/BruksfildServices01/dentismart/internal/messaging/sms"
	"github.com/BruksfildServices01/dentismart/internal/middleware"
	ucAccount "github.com/BruksfildServices01/dentismart/internal/usecase/account"
	ucDashboard "github.com/BruksfildServices01/dentismart/internal/usecase/dashboard"
	ucDentist "github.com/BruksfildServices01/dentismart/internal/usecase/dentist"
	ucPatient "github.com/BruksfildServices01/dentismart/internal/usecase/patient"
	ucReminder "github.com/BruksfildServices01/dentismart/internal/usecase/reminder"
	ucRendezVous "github.com/BruksfildServices01/dentismart/internal/usecase/rendezvous"
)

// Deps are the singletons the API routes are built from.
type Deps struct {
	Clinic     clinic.Repository
	Profiles   clinic.ProfileRepository
	RendezVous rendezvous.Repository
	Reminders  reminderdomain.Repository
	AuditLogs  audit.Reader

	Audit  *audit.Dispatcher
	Tokens *auth.TokenIssuer
	SMS    sms.Provider
	Locker lock.Locker
	Events events.Publisher

	CORSOrigins []string
	Log         *zap.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.CORSOrigins))

	if d.Locker == nil {
		d.Locker = lock.NewMemory()
	}
	if d.Events == nil {
		d.Events = events.Noop{}
	}

	// ======================================================
	// USE CASES
	// ======================================================
	listDentistsUC := ucDentist.NewListDentists(d.Clinic)

	createPatientUC := ucPatient.NewCreatePatient(d.Clinic, d.Audit)
	listPatientsUC := ucPatient.NewListPatients(d.Clinic)

	createRendezVousUC := ucRendezVous.NewCreateRendezVous(d.RendezVous, d.Clinic, d.Audit)
	listRendezVousUC := ucRendezVous.NewListRendezVous(d.RendezVous)
	updateStatusUC := ucRendezVous.NewUpdateStatus(d.RendezVous, d.Audit)

	reminderDispatcher := ucReminder.NewDispatcher(d.Reminders, d.SMS, d.Log)
	sendReminderUC := ucReminder.NewSendReminder(
		d.Reminders,
		reminderDispatcher,
		d.Locker,
		d.Events,
		d.Audit,
		d.Log,
	)

	registerUC := ucAccount.NewRegister(d.Profiles, d.Tokens, d.Audit)
	loginUC := ucAccount.NewLogin(d.Profiles, d.Tokens)
	getMeUC := ucAccount.NewGetMe(d.Profiles)
	statsUC := ucDashboard.NewGetStats(d.Clinic, d.RendezVous)

	// ======================================================
	// HANDLERS
	// ======================================================
	dentistHandler := handlers.NewDentistHandler(listDentistsUC, d.Log)
	patientHandler := handlers.NewPatientHandler(createPatientUC, listPatientsUC, d.Log)
	rendezVousHandler := handlers.NewRendezVousHandler(
		createRendezVousUC,
		listRendezVousUC,
		updateStatusUC,
		d.Log,
	)
	reminderHandler := handlers.NewReminderHandler(sendReminderUC, d.SMS, d.Log)
	authHandler := handlers.NewAuthHandler(registerUC, loginUC, d.Log)
	meHandler := handlers.NewMeHandler(getMeUC, statsUC, d.Log)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs, d.Log)

	r.GET("/health", health)
	r.NoRoute(routeNotFound)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// CLINIC (session optional)
		// ------------------------------
		clinicAPI := api.Group("/")
		clinicAPI.Use(middleware.OptionalAuth(d.Tokens))
		{
			clinicAPI.GET("/dentists", dentistHandler.List)

			clinicAPI.GET("/patients", patientHandler.List)
			clinicAPI.POST("/patients", patientHandler.Create)

			clinicAPI.GET("/rendezvous", rendezVousHandler.List)
			clinicAPI.POST("/rendezvous", rendezVousHandler.Create)

			clinicAPI.POST("/rendezvous/send-reminder", reminderHandler.Send)
			clinicAPI.GET("/rendezvous/send-reminder", reminderHandler.Status)
		}

		// ------------------------------
		// SECURED
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Tokens))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.GET("/dashboard/stats", meHandler.Stats)
			secured.PATCH("/rendezvous/:id/status", rendezVousHandler.UpdateStatus)
			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}

// RegisterContactRoutes wires the standalone lead-capture service.
func RegisterContactRoutes(r *gin.Engine, leads *lead.Service, corsOrigins []string, log *zap.Logger) {
	r.Use(middleware.CORSMiddleware(corsOrigins))

	contactHandler := handlers.NewContactHandler(leads, log)

	r.GET("/health", health)
	r.POST("/api/contact", contactHandler.Submit)
	r.NoRoute(routeNotFound)
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func routeNotFound(c *gin.Context) {
	httperr.NotFound(c, "route_not_found", "Route introuvable")
}
