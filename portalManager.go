package portalManager

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jobportal/portalManager/config"
	"github.com/jobportal/portalManager/database"
	"github.com/jobportal/portalManager/database/memory"
	"github.com/jobportal/portalManager/handler"
	mw "github.com/jobportal/portalManager/middleware"
	"github.com/jobportal/portalManager/service"
	"github.com/jobportal/portalManager/session"
	"github.com/jobportal/portalManager/upload"
	"github.com/jobportal/portalManager/view/screens"

	"github.com/labstack/echo/v4"
	qh "github.com/siherrmann/queuer/helper"
)

// AdminServer loads the configuration, sets up routes and runs the Echo
// server until SIGINT or SIGTERM.
func AdminServer() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logger
	opts := qh.PrettyHandlerOptions{
		SlogOpts: slog.HandlerOptions{
			Level: slog.LevelInfo,
		},
	}
	logger := slog.New(qh.NewPrettyHandler(os.Stdout, opts))

	ah, m, err := InitAdminHandler(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize admin handler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	SetupRoutes(e, ah, m)

	go func() {
		err := e.Start(":" + cfg.Server.Port)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server stopped", "error", err)
			cancel()
		}
	}()
	logger.Info("Admin server started", "port", cfg.Server.Port, "database", cfg.Database.Mode, "storage", cfg.Storage.Mode)

	<-ctx.Done()
	logger.Info("Shutting down admin server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	return e.Shutdown(shutdownCtx)
}

// InitAdminHandler creates the row store, the logo filesystem, the session
// manager and the admin handler with its middleware.
func InitAdminHandler(ctx context.Context, cfg config.Config, logger *slog.Logger) (*handler.AdminHandler, *mw.Middleware, error) {
	store, err := newStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}

	// Create filesystem for company logos
	filesystem, err := upload.NewFilesystem(cfg.Storage.Upload())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create filesystem: %w", err)
	}

	sessions, err := session.NewManager([]byte(cfg.Server.SessionKey), cfg.Server.SecureCookies, cfg.Server.SessionTTL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create session manager: %w", err)
	}
	if cfg.Server.SessionKey == "" {
		logger.Warn("No session key configured, sessions end on restart")
	}

	auth, err := session.NewAuthenticator(cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.PasswordHash)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create authenticator: %w", err)
	}
	if cfg.Admin.PasswordHash == "" && cfg.Admin.Password == config.DefaultAdminPassword {
		logger.Warn("Admin uses the default password, set admin.password or admin.password_hash")
	}

	svc := service.NewService(store, logger)
	admin := screens.AdminInfo{
		Username: cfg.Admin.Username,
		Email:    cfg.Admin.Email,
		Role:     cfg.Admin.Role,
	}
	ah := handler.NewAdminHandler(svc, filesystem, sessions, auth, admin, logger)

	m := mw.NewMiddleware(sessions, svc.UnreadMessages, cfg.Server.SecureCookies, cfg.Server.TrustedOrigins, logger)

	return ah, m, nil
}

// newStore opens the row store selected by the database mode. The memory
// store is always seeded, Postgres only when database.seed is set.
func newStore(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*database.Store, error) {
	var store *database.Store
	seed := cfg.Seed

	switch cfg.Mode {
	case config.DatabaseModeMemory:
		store = memory.NewStore()
		seed = true
	default:
		db, err := database.Open(cfg.Connection(), logger)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		store, err = database.NewStore(db, cfg.WithTableDrop)
		if err != nil {
			return nil, fmt.Errorf("failed to create database handlers: %w", err)
		}
	}

	if seed {
		if err := database.Seed(ctx, store, time.Now()); err != nil {
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		logger.Info("Demo data seeded", "mode", cfg.Mode)
	}

	return store, nil
}
