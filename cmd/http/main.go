package main

import (
	"context"
	"daily-journal-service/internal/app/config"
	"daily-journal-service/internal/app/contracts"
	"daily-journal-service/internal/app/delivery/http/controllers"
	"daily-journal-service/internal/app/delivery/http/middlewares"
	"daily-journal-service/internal/app/delivery/http/routers"
	"daily-journal-service/internal/app/drivers/database"
	"daily-journal-service/internal/app/drivers/logger"
	"daily-journal-service/internal/app/drivers/messaging"
	"daily-journal-service/internal/app/drivers/storage"
	"daily-journal-service/internal/app/services/core/auth"
	"daily-journal-service/internal/app/services/core/entries"
	"daily-journal-service/internal/app/services/core/quotes"
	"daily-journal-service/internal/app/services/core/session"
	"daily-journal-service/internal/app/services/core/shares"
	"daily-journal-service/internal/app/services/core/users"
	"daily-journal-service/internal/app/services/shared/events"
	"daily-journal-service/internal/app/services/shared/locker"
	"daily-journal-service/internal/app/services/shared/ratelimiter"
	"daily-journal-service/internal/app/services/shared/redis"
	minioStorage "daily-journal-service/internal/app/services/shared/storage"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	ctx := context.Background()
	mongoDB := database.NewMongoDB(ctx, driverConfig)
	redisClient := database.NewRedisClient(ctx, driverConfig)
	minioClient := storage.NewMinio(ctx, driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.RabbitMQ.PublishEnabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, internalConfig)
	}

	publisher, err := bootstrapingTheApp(ctx, bootstrap)
	if err != nil {
		log.Fatalf("Failed to bootstrap the app: %v", err)
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started", zap.String("port", internalConfig.App.Port))
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
		log.Printf("Server forced to shutdown: %v", err)
	}

	if err := publisher.Close(); err != nil {
		log.Printf("Failed to close event publisher: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Failed to release resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) (contracts.EventPublisher, error) {
	cfg := bootstrap.InternalConfig
	zapLogger := bootstrap.Logger

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, zapLogger)
	objectStorage := minioStorage.NewMinioStorage(bootstrap.Minio)

	var publisher contracts.EventPublisher
	if bootstrap.RabbitMQ != nil {
		rabbitPublisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, cfg.RabbitMQ.EventExchange, zapLogger)
		if err != nil {
			return nil, err
		}
		publisher = rabbitPublisher
	} else {
		publisher = events.NewLogPublisher(zapLogger)
	}

	// Repositories
	userMongoRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	entryMongoRepository := entries.NewEntryMongoRepository(bootstrap.MongoDB)
	encouragementMongoRepository := shares.NewEncouragementMongoRepository(bootstrap.MongoDB)

	indexCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	for _, repository := range []interface{ EnsureIndexes(context.Context) error }{
		userMongoRepository,
		entryMongoRepository,
		encouragementMongoRepository,
	} {
		if err := repository.EnsureIndexes(indexCtx); err != nil {
			return nil, err
		}
	}

	// Quote
	candidates, err := quotes.LoadQuotes(cfg.Quote.FilePath)
	if err != nil {
		return nil, err
	}
	quoteUsecase, err := quotes.NewQuoteUsecase(candidates, cfg, zapLogger)
	if err != nil {
		return nil, err
	}
	quoteWorker := quotes.NewWorker(zapLogger, cfg, quoteUsecase, lockerService, publisher)
	quoteWorker.Start(ctx)
	bootstrap.WorkerStop = quoteWorker.Stop

	// Usecases
	authUsecase := auth.NewAuthUsecase(userMongoRepository, sessionService, cfg, zapLogger)
	userUsecase := users.NewUserUsecase(userMongoRepository, sessionService, objectStorage, cfg, zapLogger)
	entryUsecase := entries.NewEntryUsecase(entryMongoRepository, sessionService, publisher, cfg, zapLogger)
	shareUsecase := shares.NewShareUsecase(
		userMongoRepository,
		encouragementMongoRepository,
		redisRepository,
		sessionService,
		userUsecase,
		entryUsecase,
		quoteUsecase,
		resourceLimiter,
		publisher,
		cfg,
		zapLogger,
	)

	// Delivery
	middlewares := middlewares.NewMiddlewares(zapLogger, sessionService, cfg)
	authController := controllers.NewAuthController(zapLogger, authUsecase)
	userController := controllers.NewUserController(zapLogger, userUsecase, cfg)
	entryController := controllers.NewEntryController(zapLogger, entryUsecase, cfg)
	quoteController := controllers.NewQuoteController(zapLogger, quoteUsecase)
	shareController := controllers.NewShareController(zapLogger, shareUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		cfg,
		middlewares,
		authController,
		userController,
		entryController,
		quoteController,
		shareController,
	)

	return publisher, nil
}
