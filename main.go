package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meliyah/config"
	"meliyah/cron"
	"meliyah/database"
	bookingRepo "meliyah/database/repository/booking"
	catalogRepo "meliyah/database/repository/catalog"
	customerRepo "meliyah/database/repository/customer"
	"meliyah/handlers"
	"meliyah/middleware"
	"meliyah/routes"
	"meliyah/services/booking"
	"meliyah/services/notification"
	"meliyah/services/reminder"
	"meliyah/services/selection"
	"meliyah/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err := database.SeedCatalog(seedCtx); err != nil {
		logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
	}
	cancelSeed()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	bkgRepo := bookingRepo.NewMongoBookingRepo()
	custRepo := customerRepo.NewMongoCustomerRepo()

	// reminder queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	notificationService := &notification.LogNotificationService{Logger: logger}
	cron.InitReminderWorker(notificationService)

	// services.
	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	sessionStore := selection.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)

	selectionService := &selection.DefaultSelectionService{
		Catalog: catRepo,
		Store:   sessionStore,
		Logger:  logger,
	}

	bookingService := &booking.DefaultBookingService{
		Repo:      bkgRepo,
		Selection: selectionService,
		Scheduler: reminder.NewAsynqScheduler(asynqClient, logger),
		Logger:    logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Catalog:   handlers.NewCatalogHandler(catRepo, logger),
		Session:   handlers.NewSessionHandler(selectionService, logger),
		Booking:   handlers.NewBookingHandler(bookingService, bkgRepo, logger),
		Customer:  handlers.NewCustomerHandler(custRepo, logger),
		Analytics: handlers.NewAnalyticsHandler(bkgRepo, custRepo, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

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
