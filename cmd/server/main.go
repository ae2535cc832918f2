/*
main.go - Server entry point

Starts the intern management HTTP server: loads configuration from the
environment, opens the sqlite store, seeds the protected default role, and
serves until interrupted. Shutdown drains in-flight requests for up to ten
seconds.
*/
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mghs/internhub/api"
	"github.com/mghs/internhub/config"
	"github.com/mghs/internhub/roster"
	"github.com/mghs/internhub/store/sqlite"
	"github.com/mghs/internhub/timelog"
)

func main() {
	root := &cobra.Command{
		Use:   "internhub",
		Short: "Intern attendance, overtime, and lifecycle management server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
		SilenceUsage: true,
	}

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		log.Error("open database", zap.Error(err))
		return err
	}
	defer store.Close()

	roster.OffboardingMargin = cfg.OffboardingMargin

	logbook := timelog.NewLogbookWithThreshold(store, cfg.OvertimeThreshold)
	registry := roster.NewRegistry(store)

	if err := registry.EnsureDefaultRole(ctx); err != nil {
		log.Error("seed default role", zap.Error(err))
		return err
	}

	handler := api.NewHandler(log, store, logbook, registry)
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(handler, log),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Addr), zap.String("db", cfg.DBPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", zap.String("signal", sig.String()))
	case <-ctx.Done():
		log.Info("shutting down", zap.String("reason", "context canceled"))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
		return err
	}

	log.Info("stopped")
	return nil
}
