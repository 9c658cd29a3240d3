package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"garagat/config"
	"garagat/database"
	bookingRepo "garagat/database/repository/booking"
	customerRepo "garagat/database/repository/customer"
	providerRepo "garagat/database/repository/provider"
	"garagat/handlers"
	"garagat/middleware"
	"garagat/routes"
	"garagat/services/booking"
	"garagat/services/notification"
	"garagat/services/payment"
	"garagat/services/tasks"
	"garagat/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	utils.SetJWTSecret(cfg.JWTSecret)
	stripe.Key = cfg.StripeKey

	policy, err := cfg.SchedulingPolicy()
	if err != nil {
		logger.Fatal("main: invalid scheduling configuration", zap.Error(err))
	}
	loc, err := cfg.Location()
	if err != nil {
		logger.Fatal("main: invalid time zone", zap.Error(err))
	}

	if err := database.InitDB(cfg.DatabaseURL, cfg.DatabaseName, logger); err != nil {
		logger.Fatal("main: failed to initialize database", zap.Error(err))
	}
	sessionCache := utils.GetSessionCacheClient()

	appCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(appCtx, time.Minute, sessionCache, database.MongoClient)

	// repositories.
	custRepo, err := customerRepo.NewMongoCustomerRepo(database.MongoDB)
	if err != nil {
		logger.Fatal("main: customer repository", zap.Error(err))
	}
	provRepo, err := providerRepo.NewMongoProviderRepo(database.MongoDB)
	if err != nil {
		logger.Fatal("main: provider repository", zap.Error(err))
	}
	bookRepo, err := bookingRepo.NewMongoBookingRepo(database.MongoDB)
	if err != nil {
		logger.Fatal("main: booking repository", zap.Error(err))
	}

	// notifiers.
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricsNotifier, err := booking.NewMetricsNotifier(registry)
	if err != nil {
		logger.Fatal("main: failed to register metrics", zap.Error(err))
	}

	// booking pushes run on the asynq worker when FCM is configured.
	taskRedis := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisTaskDB,
	}
	var (
		pushes     booking.PushDispatcher
		taskClient *asynq.Client
		pushWorker *asynq.Server
	)
	if path := cfg.FirebaseCredentialsPath; path != "" {
		fcm, err := notification.NewFCMClient(appCtx, path)
		if err != nil {
			logger.Fatal("main: failed to initialize FCM", zap.Error(err))
		}
		push, err := notification.NewDefaultNotificationService(fcm, logger)
		if err != nil {
			logger.Fatal("main: notification service", zap.Error(err))
		}
		processor := &tasks.PushProcessor{
			Bookings:  bookRepo,
			Customers: custRepo,
			Push:      push,
			Logger:    logger,
		}
		var mux *asynq.ServeMux
		pushWorker, mux = tasks.NewPushWorker(taskRedis, processor, cfg.PushWorkers)
		if err := pushWorker.Start(mux); err != nil {
			logger.Fatal("main: failed to start push worker", zap.Error(err))
		}
		taskClient = asynq.NewClient(taskRedis)
		pushes = tasks.NewPushQueue(taskClient)
	} else {
		logger.Warn("main: FIREBASE_CREDENTIALS_PATH not set, booking pushes disabled")
	}

	// services.
	completion := &booking.DefaultCompletionHandler{
		Bookings: bookRepo,
		Payments: payment.NewDefaultPaymentHandler(),
		Pushes:   pushes,
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingSessionService{
		Store:                booking.NewRedisSessionStore(sessionCache, cfg.SessionTTL()),
		Customers:            custRepo,
		Providers:            provRepo,
		Policy:               policy,
		Now:                  func() time.Time { return time.Now().In(loc) },
		Notifier:             booking.Notifiers{booking.NewLoggingNotifier(logger), metricsNotifier},
		Completion:           completion,
		DefaultPaymentMethod: cfg.DefaultPaymentMethod,
		Logger:               logger,
	}

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewBookingHandler(bookingService, loc),
		handlers.NewCustomerHandler(custRepo),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(middleware.RequestLogger(logger))
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle, registry)

	port := cfg.AppPort
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
	if pushWorker != nil {
		pushWorker.Shutdown()
		if err := taskClient.Close(); err != nil {
			logger.Warn("main: task client close", zap.Error(err))
		}
	}
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: mongo disconnect", zap.Error(err))
	}
	if err := sessionCache.Close(); err != nil {
		logger.Warn("main: redis close", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
