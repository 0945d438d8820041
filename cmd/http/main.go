package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"linkcare-service/internal/app/config"
	"linkcare-service/internal/app/contracts"
	"linkcare-service/internal/app/delivery/http/controllers"
	"linkcare-service/internal/app/delivery/http/middlewares"
	"linkcare-service/internal/app/delivery/http/routers"
	"linkcare-service/internal/app/delivery/soap"
	"linkcare-service/internal/app/drivers/database"
	"linkcare-service/internal/app/drivers/logger"
	"linkcare-service/internal/app/drivers/messaging"
	"linkcare-service/internal/app/drivers/storage"
	"linkcare-service/internal/app/services/core/training"
	"linkcare-service/internal/app/services/shared/archive"
	"linkcare-service/internal/app/services/shared/jwtmanager"
	"linkcare-service/internal/app/services/shared/locker"
	"linkcare-service/internal/app/services/shared/publisher"
	"linkcare-service/internal/app/services/shared/redis"
	"linkcare-service/internal/app/services/shared/session"
	"linkcare-service/internal/app/services/wsapi"
	"linkcare-service/internal/pkg/constvars"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	serviceLogger := logger.NewServiceLogger(driverConfig, internalConfig)

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         zapLogger,
		ServiceLogger:  serviceLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, zapLogger)
	}
	if internalConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, zapLogger)
	}
	if internalConfig.Minio.Enabled {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig.Minio.BucketName, zapLogger)
	}

	err := bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error while bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", internalConfig.App.Address, internalConfig.App.Port),
		Handler: bootstrap.Router,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error while releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) error {
	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "bootstrap")

	// Redis backed session cache and admission lock
	var sessionStore contracts.SessionStore
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository := redis.NewRedisRepository(bootstrap.Redis)
		sessionTTL := time.Duration(bootstrap.InternalConfig.App.SessionCacheTTLInMinutes) * time.Minute
		sessionStore = session.NewSessionStore(redisRepository, sessionTTL, bootstrap.Logger)
		lockerService = locker.NewLockService(redisRepository, bootstrap.Logger)
	}

	// WS-API
	wsapiClient, err := wsapi.Connect(ctx,
		wsapi.NewConnectOptions(bootstrap.InternalConfig.WSAPI),
		sessionStore,
		bootstrap.Logger,
		bootstrap.ServiceLogger,
		wsapi.WithStatusClassifier(bootstrap.InternalConfig.TaskStatus.StatusSets()),
	)
	if err != nil {
		return err
	}

	// Indicator events
	eventPublisher := publisher.NewNoopPublisher(bootstrap.Logger)
	if bootstrap.RabbitMQ != nil {
		eventPublisher, err = publisher.NewRabbitPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.IndicatorQueue, bootstrap.Logger)
		if err != nil {
			return err
		}
	}

	// Report archive
	reportArchive := archive.NewNoopArchive()
	if bootstrap.Minio != nil {
		reportArchive = archive.NewMinioArchive(bootstrap.Minio, bootstrap.InternalConfig.Minio.BucketName, bootstrap.Logger)
	}

	// Training
	trainingUsecase := training.NewTrainingUsecase(
		wsapiClient,
		lockerService,
		eventPublisher,
		reportArchive,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)
	trainingController := controllers.NewTrainingController(bootstrap.Logger, trainingUsecase, bootstrap.InternalConfig)
	healthController := controllers.NewHealthController(wsapiClient, bootstrap.InternalConfig)
	soapHandler := soap.NewHandler(bootstrap.Logger, trainingUsecase, bootstrap.InternalConfig, constvars.TrainingServiceNamespace)

	// Middlewares
	var jwtManager *jwtmanager.JWTManager
	if bootstrap.InternalConfig.Auth.JWTSecret != "" {
		jwtManager, err = jwtmanager.NewJWTManager(bootstrap.InternalConfig, bootstrap.Logger)
		if err != nil {
			return err
		}
	}
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, jwtManager, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, trainingController, healthController, soapHandler)
	return nil
}
