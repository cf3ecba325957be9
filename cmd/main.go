package main

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"drink-coffee/internal/handler"
	"drink-coffee/internal/notify"
	"drink-coffee/internal/repositories"
	"drink-coffee/internal/router"
	"drink-coffee/internal/service"
	"drink-coffee/pkg/envconfig"
	"drink-coffee/pkg/flags"
	"drink-coffee/pkg/kvstore"
	"drink-coffee/pkg/logger"
	"drink-coffee/pkg/scheduler"
	"drink-coffee/pkg/shutdownsetup"
)

func main() {
	// Parse command-line flags
	flagConfig := flags.Parse()

	// Validate flag configuration
	if err := flagConfig.Validate(); err != nil {
		fmt.Printf("Configuration error: %v\n", err)
		return
	}

	envErr := envconfig.LoadEnvFile(".env")

	loggerConfig := logger.Config{
		Level:        envconfig.GetLogLevel(),
		Format:       envconfig.GetEnv("LOG_FORMAT", "json"),
		Output:       envconfig.GetEnv("LOG_OUTPUT", "stdout"),
		EnableCaller: envconfig.GetEnv("LOG_ENABLE_CALLER", "true") == "true",
		Environment:  envconfig.GetEnv("ENVIRONMENT", "development"),
	}

	appLogger := logger.New(loggerConfig)

	if envErr != nil {
		appLogger.Warn("Failed to load .env file", "error", envErr)
	} else {
		appLogger.Debug(".env file loaded successfully")
	}

	appLogger.Info("Starting Drink Coffee ordering service",
		"environment", loggerConfig.Environment,
		"log_level", loggerConfig.Level)

	// Connect the durable key-value mirror; run memory-only when it is
	// unreachable so the service still comes up without Redis
	var kv kvstore.Store
	kvConfig := envconfig.LoadKVStoreConfig()
	redisStore, err := kvstore.NewRedisStore(kvConfig, appLogger)
	if err != nil {
		appLogger.Warn("Key-value mirror unavailable, session and favorites will not survive restarts", "error", err)
		kv = kvstore.NewMemoryStore()
	} else {
		kv = redisStore

		if err := redisStore.HealthCheck(); err != nil {
			appLogger.Error("Key-value store health check failed", "error", err)
		} else {
			appLogger.Info("Key-value store health check passed")
		}
	}
	defer func() {
		if err := kv.Close(); err != nil {
			appLogger.Error("Failed to close key-value store", "error", err)
		}
	}()

	catalogFile := flagConfig.CatalogFile
	if catalogFile == "" {
		catalogFile = envconfig.GetEnv("CATALOG_FILE", "")
	}

	// Initialize repositories with logger and the key-value mirror
	catalogRepo, err := repositories.NewCatalogRepository(catalogFile, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to build product catalog", "error", err)
	}
	cartRepo := repositories.NewCartRepository(appLogger)
	favoritesRepo := repositories.NewFavoritesRepository(kv, appLogger)
	sessionRepo := repositories.NewSessionRepository(kv, appLogger)

	// Shared single-shot task scheduler for payment delays and notice expiry
	sched := scheduler.NewTimerScheduler()
	notifier := notify.New(sched, notify.DefaultTTL, appLogger)
	defer notifier.Close()

	// Initialize services with logger
	cartService := service.NewCartService(catalogRepo, cartRepo, notifier, appLogger)
	paymentService := service.NewPaymentService(sched, nil, appLogger)
	orderService := service.NewOrderService(cartRepo, paymentService, appLogger)
	authService := service.NewAuthService(sessionRepo, cartRepo, favoritesRepo, appLogger)
	favoritesService := service.NewFavoritesService(catalogRepo, favoritesRepo, appLogger)

	// Initialize handlers with logger
	handlers := router.Handlers{
		Catalog:       handler.NewCatalogHandler(catalogRepo, appLogger),
		Auth:          handler.NewAuthHandler(authService, appLogger),
		Cart:          handler.NewCartHandler(cartService, orderService, appLogger),
		Payment:       handler.NewPaymentHandler(paymentService, appLogger),
		Favorites:     handler.NewFavoritesHandler(favoritesService, appLogger),
		Notifications: handler.NewNotificationHandler(notifier, appLogger),
		AuthGate:      handler.RequireSession(authService, appLogger),
	}

	mux := router.New(handlers)
	httpHandler := appLogger.HTTPMiddleware(mux)

	initialPort := flagConfig.Port
	if initialPort == "" {
		initialPort = envconfig.GetEnv("PORT", "8080")
	}
	host := envconfig.GetEnv("HOST", "localhost")

	port := initialPort

	server := &http.Server{
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	maxRetries := 3
	for i := 0; i < maxRetries; i++ {
		server.Addr = host + ":" + port

		go func() {
			appLogger.Info("Starting HTTP server",
				"host", host,
				"port", port,
				"address", server.Addr)

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				appLogger.Error("Server error", "error", err)
				serverErrors <- err
			}
		}()

		select {
		case err := <-serverErrors:
			if strings.Contains(err.Error(), "address already in use") && i < maxRetries-1 {
				portNum := 8080 + i + 1
				port = fmt.Sprintf("%d", portNum)
				appLogger.Warn("Port already in use, trying alternative port",
					"current_port", server.Addr,
					"next_port", port)
				continue
			} else {
				appLogger.Error("Failed to start server after retries", "error", err)
				return
			}
		case <-time.After(200 * time.Millisecond):
			appLogger.Info("Server started successfully", "port", port)
		}

		break
	}

	select {
	case err := <-serverErrors:
		appLogger.Error("Could not start server", "error", err)
		return
	default:
		shutdownsetup.SetupGracefulShutdown(server, appLogger, notifier.Close)
	}
}
