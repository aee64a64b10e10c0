package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/kazi-link/job-portal/internal/api/http"
	"github.com/kazi-link/job-portal/internal/api/http/handlers"
	"github.com/kazi-link/job-portal/internal/auth"
	"github.com/kazi-link/job-portal/internal/config"
	"github.com/kazi-link/job-portal/internal/events"
	"github.com/kazi-link/job-portal/internal/observability"
	"github.com/kazi-link/job-portal/internal/persistence"
	"github.com/kazi-link/job-portal/internal/repository"
	"github.com/kazi-link/job-portal/internal/service"
	"github.com/kazi-link/job-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	seekerRepo := repository.NewSeekerRepository(pool)
	postingRepo := repository.NewPostingRepository(pool)
	catalogRepo := repository.NewCatalogRepository(pool)
	applicationRepo := repository.NewApplicationRepository(pool)
	adRepo := repository.NewAdvertisementRepository(pool)
	testimonialRepo := repository.NewTestimonialRepository(pool)
	chatRoomRepo := repository.NewChatRoomRepository(pool)
	chatMessageRepo := repository.NewChatMessageRepository(pool)
	chatNotificationRepo := repository.NewChatNotificationRepository(pool)

	dispatcher := events.NewRedisMirror(events.NewInMemoryDispatcher(), redis.Client, logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{UserRepo: userRepo})
	seekerService := service.NewSeekerService(seekerRepo)
	postingService := service.NewPostingService(service.PostingDependencies{
		PostingRepo: postingRepo,
		CatalogRepo: catalogRepo,
		Dispatcher:  dispatcher,
	})
	applicationService := service.NewApplicationService(service.ApplicationDependencies{
		ApplicationRepo: applicationRepo,
		PostingRepo:     postingRepo,
		SeekerRepo:      seekerRepo,
		Dispatcher:      dispatcher,
		Logger:          logger,
	})
	chatService := service.NewChatService(service.ChatDependencies{
		RoomRepo:         chatRoomRepo,
		MessageRepo:      chatMessageRepo,
		NotificationRepo: chatNotificationRepo,
		SeekerRepo:       seekerRepo,
		RedisClient:      redis.Client,
		Dispatcher:       dispatcher,
		Logger:           logger,
	})
	adService := service.NewAdvertisementService(adRepo)
	testimonialService := service.NewTestimonialService(testimonialRepo, seekerRepo)
	notificationService := service.NewNotificationService(dispatcher, chatService, logger, cfg.Notification)

	worker.StartNotificationWorker(notificationService)
	expiryWorker := worker.NewExpiryWorker(postingService, cfg.Worker.SweepInterval(), logger)
	go expiryWorker.Run(ctx)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Users:          handlers.NewUsersHandler(authService),
		Seekers:        handlers.NewSeekersHandler(seekerService),
		Postings:       handlers.NewPostingsHandler(postingService),
		Applications:   handlers.NewApplicationsHandler(applicationService),
		Advertisements: handlers.NewAdvertisementsHandler(adService, testimonialService),
		Chat:           handlers.NewChatHandler(chatService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	cancel()
	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
