package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/epi-console/internal/application/analytics"
	"github.com/jhoicas/epi-console/internal/application/auth"
	"github.com/jhoicas/epi-console/internal/application/dto"
	"github.com/jhoicas/epi-console/internal/application/navigation"
	"github.com/jhoicas/epi-console/internal/application/process"
	"github.com/jhoicas/epi-console/internal/application/reports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/domain/entity"
	"github.com/jhoicas/epi-console/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	Navigator      *navigation.Navigator
	CompanyUC      *usecase.CompanyUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	EPIUC          *usecase.EPIUseCase
	ProcessUC      *process.UseCase
	ReportUC       *reports.ReportUseCase
	DashboardUC    *appanalytics.DashboardUseCase
	NotificationUC *usecase.NotificationUseCase
	Validator      *RequestValidator
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	rv := deps.Validator
	if rv == nil {
		rv = NewRequestValidator()
	}
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	authn := AuthMiddleware(deps.AuthUC)

	api := app.Group("/api")

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, rv, log)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", authn, authHandler.Logout)
	api.Get("/auth/me", authn, authHandler.Me)

	// Navegación: resolve funciona con o sin sesión.
	navHandler := NewNavigationHandler(deps.Navigator)
	api.Get("/navigation/menu", authn, navHandler.Menu)
	api.Get("/navigation/resolve", OptionalAuth(deps.AuthUC), navHandler.Resolve)

	// Administración de empresas
	companies := api.Group("/admin/companies", authn, RequireCapability(entity.CapCompaniesManage))
	companyHandler := NewCompanyHandler(deps.CompanyUC, rv, log)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Patch("/:id/status", companyHandler.ToggleStatus)

	// Colaboradores
	employees := api.Group("/employees", authn, RequireCapability(entity.CapEmployeesManage))
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC, rv, log)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Patch("/:id/status", employeeHandler.ToggleStatus)
	employees.Post("/:id/biometrics", employeeHandler.CaptureBiometrics)

	// Catálogo de EPIs
	epis := api.Group("/epis", authn, RequireCapability(entity.CapEPIsManage))
	epiHandler := NewEPIHandler(deps.EPIUC, rv, log)
	epis.Get("/", epiHandler.List)
	epis.Post("/", epiHandler.Create)
	epis.Get("/low-stock", epiHandler.LowStock)
	epis.Post("/validate-ca", epiHandler.ValidateCA)

	// Agenda de procesos
	processHandler := NewProcessHandler(deps.ProcessUC, rv, log)
	processes := api.Group("/processes", authn, RequireCapability(entity.CapProcessesManage))
	processes.Get("/", processHandler.List)
	processes.Post("/", processHandler.Create)
	processes.Post("/:id/items", processHandler.AddItem)
	processes.Delete("/:id/items/:epiId", processHandler.RemoveItem)

	// Procesos activos y confirmación biométrica
	active := api.Group("/active-processes", authn, RequireCapability(entity.CapProcessesConfirm))
	active.Get("/", processHandler.ListActive)
	active.Post("/:id/confirmation", processHandler.OpenConfirmation)
	active.Get("/:id/confirmation", processHandler.ConfirmationState)
	active.Delete("/:id/confirmation", processHandler.CancelConfirmation)
	active.Post("/:id/confirmation/verify", processHandler.Verify)
	active.Post("/:id/confirmation/finalize", processHandler.Finalize)

	// Comprobantes
	reportsGroup := api.Group("/reports", authn, RequireCapability(entity.CapReportsView))
	reportHandler := NewReportHandler(deps.ReportUC, rv, log)
	reportsGroup.Get("/", reportHandler.List)
	reportsGroup.Post("/:id/download", reportHandler.Download)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, log)
	api.Get("/dashboard", authn, RequireCapability(entity.CapDashboardView), dashboardHandler.Get)

	// Notificaciones
	notificationHandler := NewNotificationHandler(deps.NotificationUC, log)
	api.Get("/notifications", authn, notificationHandler.List)

	api.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ruta no encontrada"})
	})
}
