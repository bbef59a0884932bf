package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	appanalytics "github.com/jhoicas/epi-console/internal/application/analytics"
	"github.com/jhoicas/epi-console/internal/application/auth"
	"github.com/jhoicas/epi-console/internal/application/navigation"
	"github.com/jhoicas/epi-console/internal/application/process"
	"github.com/jhoicas/epi-console/internal/application/reports"
	"github.com/jhoicas/epi-console/internal/application/usecase"
	"github.com/jhoicas/epi-console/internal/infrastructure/device"
	"github.com/jhoicas/epi-console/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/epi-console/internal/interfaces/http"
	"github.com/jhoicas/epi-console/pkg/config"
	"github.com/jhoicas/epi-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")
	if cfg.UsingDevSecret() {
		log.Warn().Msg("JWT_SECRET no definido: usando secreto de desarrollo")
	}

	ctx := context.Background()
	store := memory.NewStore(time.Now)
	if cfg.Seed {
		if err := memory.Seed(ctx, store, time.Now()); err != nil {
			log.Fatal().Err(err).Msg("carga de datos de demostración")
		}
		log.Info().Msg("datos de demostración cargados")
	}

	// Dispositivos simulados: lector biométrico y consulta de CA.
	reader := device.NewBiometricReader(cfg.Simulation.BiometricScan, cfg.Simulation.BiometricCapture, log)
	caValidator := device.NewCAValidator(cfg.Simulation.CAValidation, time.Now, log)

	notificationUC := usecase.NewNotificationUseCase(store.Notifications, cfg.Notification.TTL, time.Now)
	companyUC := usecase.NewCompanyUseCase(store.Companies, notificationUC, log, time.Now)
	employeeUC := usecase.NewEmployeeUseCase(store.Employees, reader, notificationUC, log, time.Now)
	epiUC := usecase.NewEPIUseCase(store.EPIs, caValidator, notificationUC, log, time.Now)
	reportUC := reports.NewReportUseCase(store.Reports, notificationUC, cfg.Simulation.ReportDownload, log, time.Now)
	processUC := process.NewUseCase(process.Deps{
		Processes: store.Processes,
		Employees: store.Employees,
		EPIs:      store.EPIs,
		Reports:   store.Reports,
		Reader:    reader,
		Notifier:  notificationUC,
		LowStock:  epiUC,
		Log:       log,
		Now:       time.Now,

		ConfirmationTTL: cfg.Workflow.ConfirmationTTL,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(store.Dashboard)
	authUC := auth.NewAuthUseCase(store.Users, store.RevokedTokens, notificationUC, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := httpRouter.NewApp(cfg.App.Name, log)
	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		Navigator:      navigation.NewNavigator(epiUC, log),
		CompanyUC:      companyUC,
		EmployeeUC:     employeeUC,
		EPIUC:          epiUC,
		ProcessUC:      processUC,
		ReportUC:       reportUC,
		DashboardUC:    dashboardUC,
		NotificationUC: notificationUC,
		Validator:      httpRouter.NewRequestValidator(),
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
