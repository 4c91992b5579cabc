package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"roster/internal/config"
	"roster/internal/http/server"
	"roster/pkg/log"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap/zapcore"
)

const sessionSweepInterval = time.Minute

func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:   "serve",
		Usage:  "run the HTTP server",
		Action: serveAction,
	}
}

func serveAction(c *cli.Context) error {
	return Start(c.Context, c.String("config"))
}

func Start(ctx context.Context, configPath string) error {
	logger := log.NewZapLogger(appName, zapcore.InfoLevel)

	cfg, err := config.NewApp(configPath)
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}
	logger = newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	app, err := NewApplication(ctx, cfg, logger)
	if err != nil {
		logger.Errorw("failed to initialise application", "error", err)
		return err
	}
	defer func() { _ = closeAndLog(logger, app) }()

	hdlr, err := app.Handler()
	if err != nil {
		logger.Errorw("failed to build http handler", "error", err)
		return err
	}

	sweepCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go app.Sessions.Sweep(sweepCtx, sessionSweepInterval)

	srv := server.NewHTTP(logger, hdlr, cfg.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer signal.Stop(sig)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
