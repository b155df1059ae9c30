package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"sais/config"
	"sais/metrics"
	"sais/middleware"
	"sais/services/registry/delivery"
	"sais/services/registry/repository"
	"sais/services/registry/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	log = bootLogger()

	startHTTP()
}

// bootLogger loads .env before the logger reads LOG_LEVEL and LOG_FORMAT.
func bootLogger() *logrus.Logger {
	envErr := godotenv.Load()
	logger := config.GetLogrusInstance()
	if envErr != nil {
		logger.Info("No .env file found, using process environment")
	}
	return logger
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	app.Use(recover.New(recover.Config{EnableStackTrace: true}))
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger(log, m))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	db, err := config.BootDB()
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get DB handle: %v", err)
		return
	}

	timeout := config.GetUseCaseTimeout()

	// Repositories
	repos := usecase.Repos{
		Applicants:   repository.NewApplicantRepository(db),
		Applications: repository.NewApplicationRepository(db),
		Lookups:      repository.NewLookupRepository(db),
		Geography:    repository.NewGeographyRepository(db),
		Reports:      repository.NewReportRepository(db),
	}
	tx := repository.NewTransactor(db)

	// Use cases
	geographyUC := usecase.NewGeographyUseCase(repos.Geography, timeout)
	lookupUC := usecase.NewLookupUseCase(repos.Lookups, timeout)
	applicantUC := usecase.NewApplicantUseCase(repos, tx, m, timeout)
	applicationUC := usecase.NewApplicationUseCase(repos, tx, m, timeout)
	reportUC := usecase.NewReportUseCase(repos.Reports, m, timeout)

	// Delivery
	delivery.NewHealthDelivery(app, sqlDB)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	delivery.NewApplicantDelivery(app, applicantUC, geographyUC)
	delivery.NewApplicationDelivery(app, applicationUC)
	delivery.NewOfficerDelivery(app, lookupUC)
	delivery.NewProgramDelivery(app, lookupUC)
	delivery.NewManagementDelivery(app, geographyUC, lookupUC)
	delivery.NewReportDelivery(app, reportUC)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on %s", config.GetFiberListenAddress())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()

	if err := sqlDB.Close(); err != nil {
		log.Errorf("Error closing database: %v", err)
	}
	log.Info("Server shut down gracefully")
}
