package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"roster/internal/config"
	"roster/internal/core"
	"roster/internal/db"
	"roster/internal/http/handler"
	"roster/internal/http/handler/middleware"
	"roster/internal/http/payload"
	"roster/internal/http/view"
	"roster/internal/repository"
	"roster/internal/session"
	"roster/pkg/jwt"
	"roster/pkg/log"

	"go.uber.org/zap"
)

// Application holds the wired dependency graph shared by every command.
type Application struct {
	Config   config.App
	Logs     *zap.SugaredLogger
	Roster   *core.Roster
	Sessions *session.Store

	dbConn *db.GormDB
}

func newLogger(cfg config.App) *zap.SugaredLogger {
	level := log.ParseLevel(cfg.LogLevel)
	if cfg.IsDev() {
		return log.NewZapDevLogger(appName, level)
	}
	return log.NewZapLogger(appName, level)
}

// NewApplication connects to the database, creates the schema and the bootstrap admin account.
func NewApplication(ctx context.Context, cfg config.App, logger *zap.SugaredLogger) (*Application, error) {
	dbConn, err := db.NewGormDB(cfg.DBDriver, cfg.DBConnectionURL, log.NewGormLogger(logger, log.ParseLevel(cfg.LogLevel)))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	repo := repository.NewRepository(dbConn)
	if err = repo.MigrateTables(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("migrate tables: %w", err)
	}

	roster, err := core.NewRoster(logger, repo, cfg.BcryptCost)
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("create roster: %w", err)
	}

	created, err := roster.EnsureUser(ctx, core.AuthMessage{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("ensure admin user: %w", err)
	}
	if created {
		logger.Infow("bootstrap admin user created", "username", cfg.AdminUsername)
	}

	return &Application{
		Config:   cfg,
		Logs:     logger,
		Roster:   roster,
		Sessions: session.NewStore(cfg.SessionTTL),
		dbConn:   dbConn,
	}, nil
}

// Handler builds the HTTP handler: routes, session guard and the middleware chain.
func (a *Application) Handler() (http.Handler, error) {
	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	sessions := session.NewManager(
		a.Sessions,
		jwt.NewJWTService([]byte(a.Config.SessionSecret)),
		session.Config{
			CookieName:   a.Config.SessionCookie,
			Secure:       a.Config.CookieSecure,
			TTL:          a.Config.SessionTTL,
			AnonymousTTL: a.Config.AnonymousTTL,
		})

	rosterHdlr := handler.NewRosterHandler(
		a.Logs,
		payload.Decoder{},
		a.Roster,
		sessions,
		renderer)

	metrics := middleware.NewMetricsMiddleware(appName)

	// register routes
	mux := http.NewServeMux()
	rosterHdlr.Register(mux, middleware.NewSessionGuard(a.Logs, sessions))
	mux.Handle("GET /metrics", metrics.Handler())

	return middleware.Chain(metrics.Metrics(mux),
		middleware.NewRequestIDMiddleware().RequestID,
		middleware.NewLoggingMiddleware(a.Logs).Logging,
		middleware.NewRecoverMiddleware(a.Logs).Recover,
		sessions.Load,
	), nil
}

func (a *Application) Close() error {
	return a.dbConn.Close()
}

// closeAndLog closes c and logs a failure. The error is returned for commands that report it.
func closeAndLog(logger *zap.SugaredLogger, c io.Closer) error {
	if err := c.Close(); err != nil {
		logger.Errorw("failed to close database", "error", err)
		return err
	}
	return nil
}
