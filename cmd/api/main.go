package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/support-desk/internal/api/http"
	"github.com/spec-kit/support-desk/internal/api/http/handlers"
	"github.com/spec-kit/support-desk/internal/auth"
	"github.com/spec-kit/support-desk/internal/config"
	"github.com/spec-kit/support-desk/internal/events"
	"github.com/spec-kit/support-desk/internal/observability"
	"github.com/spec-kit/support-desk/internal/repository"
	"github.com/spec-kit/support-desk/internal/seed"
	"github.com/spec-kit/support-desk/internal/service"
	"github.com/spec-kit/support-desk/internal/session"
	"github.com/spec-kit/support-desk/internal/simulate"
	"github.com/spec-kit/support-desk/internal/worker"
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

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(dispatcher, logger)

	sessions, err := session.New(seed.Users(), cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to init session store", zap.Error(err))
	}

	wideLatency := simulate.None()
	quickLatency := simulate.None()
	if cfg.Latency.Enabled {
		wideMin, wideMax := cfg.Latency.Wide()
		quickMin, quickMax := cfg.Latency.Quick()
		wideLatency = simulate.NewLatency(wideMin, wideMax, cfg.Latency.RandSeed)
		quickLatency = simulate.NewLatency(quickMin, quickMax, cfg.Latency.RandSeed)
	}

	customerRepo := repository.NewCustomerRepository()
	ticketRepo := repository.NewTicketRepository(sessions)
	commentRepo := repository.NewCommentRepository(sessions)

	resetService := service.NewResetService(customerRepo, ticketRepo, commentRepo, dispatcher)
	resetService.ResetAllData()
	logger.Info("seed data loaded")

	authService := service.NewAuthService(cfg.Auth, sessions, wideLatency)
	customerService := service.NewCustomerService(service.CustomerDependencies{
		CustomerRepo: customerRepo,
		Sessions:     sessions,
		Latency:      quickLatency,
		Dispatcher:   dispatcher,
		Metrics:      metrics,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: ticketRepo,
		Sessions:   sessions,
		Latency:    wideLatency,
		Dispatcher: dispatcher,
		Metrics:    metrics,
	})
	commentService := service.NewCommentService(service.CommentDependencies{
		CommentRepo: commentRepo,
		Sessions:    sessions,
		Latency:     quickLatency,
		Dispatcher:  dispatcher,
		Metrics:     metrics,
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager())

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(metrics),
		Auth:           handlers.NewAuthHandler(authService),
		Customers:      handlers.NewCustomersHandler(customerService, ticketService),
		Tickets:        handlers.NewTicketsHandler(ticketService, commentService),
		Admin:          handlers.NewAdminHandler(resetService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
