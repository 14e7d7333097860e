// File: clinicore/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicore/config"
	"clinicore/cron"
	"clinicore/database"
	appointmentRepo "clinicore/database/repository/appointment"
	doctorRepoPkg "clinicore/database/repository/doctor"
	overrideRepoPkg "clinicore/database/repository/override"
	patientRepoPkg "clinicore/database/repository/patient"
	"clinicore/handlers"
	"clinicore/middleware"
	"clinicore/routes"
	"clinicore/services/booking"
	"clinicore/services/doctor"
	"clinicore/services/notification"
	"clinicore/services/patient"
	"clinicore/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	overrideRepo := overrideRepoPkg.NewMongoOverrideRepo()

	// mail queue client and worker.
	mailQueue := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer mailQueue.Close()

	sender := notification.NewSMTPSender(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPFrom,
	)
	cron.InitMailWorker(sender)

	// services.
	notificationService := notification.NewDefaultNotificationService(mailQueue)

	patientService := &patient.DefaultPatientService{
		Repo:     patientRepo,
		Notifier: notificationService,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo:         doctorRepo,
		OverrideRepo: overrideRepo,
	}
	bookingService := &booking.DefaultBookingService{
		ApptRepo:     apptRepo,
		DoctorRepo:   doctorRepo,
		PatientRepo:  patientRepo,
		OverrideRepo: overrideRepo,
		Notifier:     notificationService,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		PatientRepo: patientRepo,
		DoctorRepo:  doctorRepo,
		Patient:     &handlers.PatientHandler{Svc: patientService},
		Doctor:      &handlers.DoctorHandler{Svc: doctorService, BookingSvc: bookingService},
		Booking:     &handlers.BookingHandler{Svc: bookingService},
		Admin: &handlers.AdminHandler{
			Patients: patientService,
			Doctors:  doctorService,
			Bookings: bookingService,
		},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetOTPCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
