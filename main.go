// Command NAA-Web serves the neutron activation engine over HTTP,
// building the nuclear data store once at startup and shutting down
// the listener gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/time/rate"

	"github.com/AbelV22/NAA-Web/internal/config"
	"github.com/AbelV22/NAA-Web/internal/httpapi"
	"github.com/AbelV22/NAA-Web/internal/loader"
	"github.com/AbelV22/NAA-Web/internal/nucdata"
	"github.com/AbelV22/NAA-Web/internal/obslog"
)

var wg sync.WaitGroup

func buildStore(cfg config.Config, logger *slog.Logger) (*nucdata.Store, error) {
	xlsxPath := cfg.DataDir + "/naa.xlsx"
	tables, err := loader.LoadXLSX(xlsxPath, cfg.ActivationSheet, cfg.DecaySheet, cfg.LimitsSheet)
	if err != nil {
		return nil, fmt.Errorf("load workbook %s: %w", xlsxPath, err)
	}
	logger.Info("loaded ingestion tables",
		"activation_rows", tables.ActivationReport.RowsTotal,
		"decay_rows", tables.DecayReport.RowsTotal,
		"limit_rows", tables.LimitsReport.RowsTotal)

	store, err := nucdata.Build(tables.Activation, tables.Decay, tables.Limits)
	if err != nil {
		return nil, err
	}
	obslog.LogDiagnostics(logger, xlsxPath, store.Diagnostics)
	return store, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	logger, cleanupLog := obslog.Setup(cfg.LogFile, cfg.LogLevel)
	defer cleanupLog()

	store, err := buildStore(cfg, logger)
	if err != nil {
		log.Fatalf("naa: %v", err)
	}

	env := &httpapi.Env{Store: store}
	handler := httpapi.NewRouter(env, rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst)

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "addr", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
	logger.Info("server stopped")

	wg.Wait()
}
