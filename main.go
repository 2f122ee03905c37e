// File: bookit/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"bookit/config"
	"bookit/cron"
	"bookit/database"
	bookingRepoPkg "bookit/database/repository/booking"
	experienceRepoPkg "bookit/database/repository/experience"
	promoRepoPkg "bookit/database/repository/promo"
	"bookit/handlers"
	"bookit/middleware"
	"bookit/routes"
	"bookit/services/booking"
	"bookit/services/catalog"
	"bookit/services/notification"
	"bookit/services/promo"
	"bookit/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	experienceRepo := experienceRepoPkg.NewMongoExperienceRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	promoRepo := promoRepoPkg.NewMongoPromoRepo()

	if err := experienceRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure experience indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := promoRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Warnf("main: failed to ensure promo indexes: %v", err)
	}

	// notification queue.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	notifier, err := notification.NewAsynqNotifier(asynqClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notifier: %v", err)
	}
	cron.InitEmailWorker(notification.LogMailer{})

	// services.
	catalogService := &catalog.DefaultCatalogService{
		ExperienceRepo: experienceRepo,
		BookingRepo:    bookingRepo,
		Cache:          utils.GetCacheClient(),
		CacheTTL:       time.Duration(config.AppConfig.CatalogCacheTTL) * time.Second,
	}
	bookingService := &booking.DefaultBookingService{
		ExperienceRepo: experienceRepo,
		BookingRepo:    bookingRepo,
		Notifier:       notifier,
	}
	promoService := &promo.DefaultPromoService{
		Repo: promoRepo,
	}

	experienceHandler := handlers.NewExperienceHandler(catalogService, logger)
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	promoHandler := handlers.NewPromoHandler(promoService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListExperiencesHandler: experienceHandler.ListExperiencesHandler,
		GetExperienceHandler:   experienceHandler.GetExperienceHandler,
		CreateBookingHandler:   bookingHandler.CreateBookingHandler,
		GetBookingHandler:      bookingHandler.GetBookingHandler,
		ValidatePromoHandler:   promoHandler.ValidatePromoHandler,
		HealthHandler:          handlers.HealthHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
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
	logger.Info("main: server is shutting down...", zap.String("addr", srv.Addr))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
