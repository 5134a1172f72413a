package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/RazanXCode/MadinahHub/internal/config"
	"github.com/RazanXCode/MadinahHub/internal/handler"
	"github.com/RazanXCode/MadinahHub/internal/middleware"
	"github.com/RazanXCode/MadinahHub/internal/notification"
	"github.com/RazanXCode/MadinahHub/internal/repository"
	"github.com/RazanXCode/MadinahHub/internal/router"
	"github.com/RazanXCode/MadinahHub/internal/scheduler"
	"github.com/RazanXCode/MadinahHub/internal/service"
	"github.com/RazanXCode/MadinahHub/internal/ticket"
	_ "github.com/lib/pq" // postgres driver for goose
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	dispatcher *notification.Dispatcher
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"MadinahHub",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	contactRepo := repository.NewContactRepo(a.db)

	dispatcher, err := a.initDispatcher(contactRepo)
	if err != nil {
		return fmt.Errorf("init dispatcher: %w", err)
	}
	a.dispatcher = dispatcher

	issuer := ticket.NewIssuer(ticket.ShortUUIDEncoder{})

	eventService := service.NewEventService(eventRepo)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, issuer, dispatcher, a.log)

	a.scheduler = scheduler.New(
		eventService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(eventService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) initDispatcher(contacts notification.ContactDirectory) (*notification.Dispatcher, error) {
	cfg := a.cfg.Notifications

	var email notification.EmailSender
	if cfg.Email.APIKey != "" && cfg.Email.FromEmail != "" {
		email = notification.NewMailerSendEmail(cfg.Email.APIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		a.log.Warn("email credentials missing, email notifications disabled")
	}

	var sms notification.SmsSender
	if cfg.Sms.AccountSID != "" && cfg.Sms.AuthToken != "" {
		sms = notification.NewTwilioSms(cfg.Sms.AccountSID, cfg.Sms.AuthToken, cfg.Sms.From)
	} else {
		a.log.Warn("sms credentials missing, sms notifications disabled")
	}

	var push notification.PushSender
	if cfg.Telegram.BotToken != "" {
		p, err := notification.NewTelegramPush(cfg.Telegram.BotToken)
		if err != nil {
			return nil, fmt.Errorf("init telegram push: %w", err)
		}
		push = p
	} else {
		a.log.Warn("telegram bot token missing, push notifications disabled")
	}

	return notification.New(contacts, email, sms, push, cfg.QueueSize, a.log), nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.dispatcher.Start(ctx)
	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
