package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fansel/domburg-sub000/internal/calendar"
	"github.com/fansel/domburg-sub000/internal/config"
	"github.com/fansel/domburg-sub000/internal/handler"
	"github.com/fansel/domburg-sub000/internal/middleware"
	"github.com/fansel/domburg-sub000/internal/notification"
	"github.com/fansel/domburg-sub000/internal/pricing"
	"github.com/fansel/domburg-sub000/internal/repository"
	"github.com/fansel/domburg-sub000/internal/router"
	"github.com/fansel/domburg-sub000/internal/scheduler"
	"github.com/fansel/domburg-sub000/internal/service"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	loc        *time.Location
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"domburg",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	loc, err := time.LoadLocation(cfg.Property.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load property timezone: %w", err)
	}
	app.loc = loc

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
	bookingRepo := repository.NewBookingRepo(a.db)
	linkRepo := repository.NewLinkRepo(a.db)
	markerRepo := repository.NewMarkerRepo(a.db)

	cal, err := calendar.NewGoogleCalendar(
		context.Background(),
		a.cfg.Google.CredentialsFile,
		a.cfg.Google.CalendarID,
		a.cfg.Google.MaxResults,
		a.loc,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init calendar adapter: %w", err)
	}

	notifier, err := notification.NewTelegramNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.AdminChatIDs,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	pricer := pricing.NewCalculator(
		a.cfg.Pricing.NightlyRate,
		a.cfg.Pricing.AlternateNightlyRate,
		a.cfg.Pricing.CleaningFee,
	)

	bookingService := service.NewBookingService(bookingRepo, pricer, a.loc, a.log)
	syncService := service.NewSyncService(bookingRepo, cal, pricer, a.loc, a.cfg.Property.Name, a.log)
	linkService := service.NewLinkService(linkRepo, markerRepo, cal, a.log)
	conflictService := service.NewConflictService(
		bookingRepo, cal, linkRepo, markerRepo, notifier,
		a.loc, a.cfg.Conflicts.ReNotifyWindow(),
		a.cfg.Conflicts.ScanPast(), a.cfg.Conflicts.ScanFuture(),
		a.log,
	)
	viewService := service.NewViewService(bookingRepo, cal, a.loc)

	a.scheduler = scheduler.New(
		syncService,
		conflictService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(bookingService, syncService, conflictService, linkService, viewService)
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

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

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
