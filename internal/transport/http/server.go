package http

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawtag/internal/cache"
	"pawtag/internal/config"
	"pawtag/internal/database"
	"pawtag/internal/handler"
	"pawtag/internal/logger"
	appredis "pawtag/internal/redis"
	"pawtag/internal/repository"
	"pawtag/internal/service"
	"pawtag/internal/storage"
	"pawtag/migrations"
)

// Run wires the application together and serves until interrupted.
func Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	dbURL := migrations.BuildDBURL(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
	if err := migrations.Run(dbURL); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	ctx := context.Background()

	store, err := storage.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up storage: %w", err)
	}

	// Redis is optional; without it the public profile is served from
	// the database on every request.
	var profileCache cache.ProfileCache
	if cfg.RedisURL != "" {
		redisClient, err := appredis.NewClient(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		if err := redisClient.Ping(ctx); err != nil {
			return fmt.Errorf("failed to reach redis: %w", err)
		}
		defer redisClient.Close()
		profileCache = cache.NewProfileCache(redisClient.Client)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	dogRepo := repository.NewDogRepository(db)
	vaccineRepo := repository.NewVaccineRepository(db)
	notifRepo := repository.NewNotificationRepository(db)

	// Services
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(refreshTokenRepo, cfg)
	uploadService := service.NewUploadService(store)
	dogService := service.NewDogService(dogRepo, userRepo, store, profileCache, cfg.PublicBaseURL)
	vaccineService := service.NewVaccineService(db, vaccineRepo, notifRepo, dogRepo)
	notificationService := service.NewNotificationService(notifRepo)
	cardService := service.NewCardService(dogRepo, userRepo, store)

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	go authService.StartTokenCleanup(cleanupCtx, time.Hour)

	// Handlers
	routerCfg := RouterConfig{
		AuthHandler:         handler.NewAuthHandler(userService, authService),
		DashboardHandler:    handler.NewDashboardHandler(userService, dogService, vaccineService, notificationService),
		DogHandler:          handler.NewDogHandler(dogService, uploadService, cardService),
		VaccineHandler:      handler.NewVaccineHandler(vaccineService, uploadService),
		NotificationHandler: handler.NewNotificationHandler(notificationService),
		JWTSecret:           cfg.JWTSecret,
	}
	if cfg.StorageBackend == "local" {
		routerCfg.StaticDir = cfg.StorageLocalDir
	}

	router := NewRouter(routerCfg)

	server := &stdhttp.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infow("server listening", "port", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Log.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	return nil
}
