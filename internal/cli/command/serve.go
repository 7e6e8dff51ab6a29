package command

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"token-auth-backend/internal/api/routes"
	"token-auth-backend/internal/database"
	"token-auth-backend/internal/logger"
	"token-auth-backend/internal/metrics"

	"github.com/urfave/cli/v2"
)

// ServeCommand starts the HTTP API.
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:  "shutdown-timeout",
				Usage: "Time allowed for in-flight requests on shutdown",
				Value: 10 * time.Second,
			},
			&cli.BoolFlag{
				Name:  "skip-migrate",
				Usage: "Do not run schema migrations on startup",
			},
		},
		Action: serve,
	}
}

func serve(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := logger.New()

	db, err := openDatabase(cfg, !c.Bool("skip-migrate"))
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("failed to close database")
		}
	}()

	if cfg.UsersSeedFile != "" {
		res, err := database.InitUsersFromYAML(db, cfg.UsersSeedFile)
		if err != nil {
			return err
		}
		log.WithField("created", res.Created).WithField("updated", res.Updated).Info("users seeded")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           routes.SetupRoutes(db, cfg, metrics.NewTokenMetrics()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), c.Duration("shutdown-timeout"))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
		return err
	}
	log.Info("graceful shutdown completed")
	return nil
}
