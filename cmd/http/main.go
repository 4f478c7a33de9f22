package main

import (
	"citamed-service/internal/app/config"
	"citamed-service/internal/app/delivery/http/controllers"
	"citamed-service/internal/app/delivery/http/middlewares"
	"citamed-service/internal/app/delivery/http/routers"
	"citamed-service/internal/app/drivers/database"
	"citamed-service/internal/app/drivers/logger"
	"citamed-service/internal/app/drivers/messaging"
	"citamed-service/internal/app/drivers/storage"
	"citamed-service/internal/app/services/core/bookings"
	"citamed-service/internal/app/services/core/directory"
	coreSchedules "citamed-service/internal/app/services/core/schedules"
	"citamed-service/internal/app/services/core/transactions"
	"citamed-service/internal/app/services/shared/locker"
	"citamed-service/internal/app/services/shared/notifications"
	"citamed-service/internal/app/services/shared/redis"
	sharedStorage "citamed-service/internal/app/services/shared/storage"
	"citamed-service/internal/app/services/upstream/appointments"
	"citamed-service/internal/app/services/upstream/doctors"
	"citamed-service/internal/app/services/upstream/patients"
	"citamed-service/internal/app/services/upstream/payments"
	upstreamSchedules "citamed-service/internal/app/services/upstream/schedules"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error closing application resources", zap.Error(err))
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	backendTimeout := time.Duration(bootstrap.InternalConfig.Backend.RequestTimeoutInSeconds) * time.Second
	backendBaseUrl := bootstrap.InternalConfig.Backend.BaseUrl

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	photoStorage := sharedStorage.NewMinioPhotoStorage(
		minioClient,
		bootstrap.DriverConfig.Minio.BucketName,
		time.Duration(bootstrap.InternalConfig.Booking.PhotoURLExpiryTimeInHours)*time.Hour,
		bootstrap.Logger,
	)
	notificationService, err := notifications.NewRabbitMQNotificationService(
		bootstrap.RabbitMQ,
		bootstrap.InternalConfig.Booking.NotificationQueue,
		bootstrap.Logger,
	)
	if err != nil {
		bootstrap.Logger.Fatal("Failed to initialize notification service", zap.Error(err))
	}

	// Upstream clinic backend clients
	patientClient := patients.NewPatientClient(backendBaseUrl, backendTimeout)
	doctorClient := doctors.NewDoctorClient(backendBaseUrl, backendTimeout)
	scheduleClient := upstreamSchedules.NewScheduleClient(backendBaseUrl, backendTimeout)
	appointmentClient := appointments.NewAppointmentClient(backendBaseUrl, backendTimeout)
	paymentClient := payments.NewPaymentClient(backendBaseUrl, backendTimeout)

	// Transactions
	transactionRepository := transactions.NewTransactionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Usecases
	bookingUsecase := bookings.NewBookingUsecase(
		redisRepository,
		lockService,
		patientClient,
		doctorClient,
		scheduleClient,
		appointmentClient,
		paymentClient,
		transactionRepository,
		notificationService,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	directoryUsecase := directory.NewDirectoryUsecase(
		patientClient,
		doctorClient,
		redisRepository,
		photoStorage,
		bootstrap.Logger,
	)
	scheduleUsecase := coreSchedules.NewScheduleUsecase(scheduleClient, bootstrap.Logger)

	// Delivery
	mw := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase)
	directoryController := controllers.NewDirectoryController(bootstrap.Logger, directoryUsecase)
	scheduleController := controllers.NewScheduleController(bootstrap.Logger, scheduleUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		bookingController,
		directoryController,
		scheduleController,
	)
}
