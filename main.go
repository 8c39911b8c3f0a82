package main

import (
	"ClinicDesk/config"
	"ClinicDesk/controllers"
	"ClinicDesk/db"
	"ClinicDesk/hasher"
	"ClinicDesk/jobs"
	"ClinicDesk/logger"
	"ClinicDesk/migrations"
	"ClinicDesk/observability"
	"ClinicDesk/repository"
	"ClinicDesk/routes"
	"ClinicDesk/server"
	"ClinicDesk/services"
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	startServer = server.Start
	isTest      = false
)

func main() {
	if err := run(); err != nil {
		log.Fatalln("Server stopped with error:", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		log.Println("Error in loading the configuration:", err)
		return err
	}

	zapLog, err := logger.New(cfg)
	if err != nil {
		log.Println("Error in building the logger:", err)
		return err
	}

	client := db.Connect(context.Background(), cfg.MongoDB, zapLog)
	metrics := observability.NewMetrics(client)
	bcrypt := hasher.NewBcrypt()

	accounts := repository.NewAccountRepository(client)
	authService := services.NewAuthService(accounts, bcrypt, db.ConflictExtractor{}, cfg.Admin, zapLog)
	appointmentService := services.NewAppointmentService(repository.NewAppointmentRepository(client), zapLog)
	recordService := services.NewRecordService(repository.NewClinicalRecordRepository(client), zapLog)
	billingService := services.NewBillingService(repository.NewBillingRepository(client), zapLog)

	var reporter *cron.Cron

	defaultopts := server.GetDefaultOptions()
	options := server.Options{
		WebServerPort:      cfg.App.Port,
		ReleaseMode:        !cfg.IsDevelopment(),
		RateLimitPerSecond: cfg.App.RateLimitPerSecond,
		ShutdownTimeout:    cfg.App.ShutdownTimeout,

		MigrationEnabled: defaultopts.MigrationEnabled && !isTest,
		MigrationHandler: func() {
			client.OnConnect("account-indexes", func(ctx context.Context) error {
				coll, err := accounts.Collection()
				if err != nil {
					return err
				}
				return migrations.CreateAccountIndexes(ctx, coll)
			})
			if cfg.SeedAdminConfigured() {
				client.OnConnect("admin-seed", func(ctx context.Context) error {
					return jobs.SeedAdminAccount(ctx, accounts, bcrypt, cfg.Admin, zapLog)
				})
			}
		},

		JobsEnabled: defaultopts.JobsEnabled && !isTest,
		JobsHandler: func() {
			started, err := jobs.StartMetricsReporter(cfg.Jobs.MetricsLogSchedule, metrics, zapLog)
			if err != nil {
				zapLog.Error("Error starting metrics reporter", zap.Error(err))
				return
			}
			reporter = started
		},

		WebServerPreHandler: func(r *gin.Engine) {
			routes.Routes(r, routes.Dependencies{
				Log:          zapLog,
				Metrics:      metrics,
				Origins:      cfg.AllowedOrigins(),
				Auth:         controllers.NewAuthController(authService),
				Appointments: controllers.NewAppointmentController(appointmentService),
				Records:      controllers.NewRecordController(recordService),
				Billings:     controllers.NewBillingController(billingService),
			})
		},

		OnShutdown: func(ctx context.Context) {
			if reporter != nil {
				<-reporter.Stop().Done()
			}
			if err := client.Disconnect(ctx); err != nil {
				zapLog.Error("Error disconnecting from mongo database", zap.Error(err))
			}
			_ = zapLog.Sync()
		},
	}
	return startServer(options)
}
