package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/domain/payroll"
	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/platform/config"
	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/platform/metrics"
	"github.com/ItzPhoeniX719/LucesySombrasMantenimientoLLM-AntonioRomero/internal/transport/console"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	// stdout carries the interactive transcript, so logs go to stderr
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	logger.Info("payroll session starting", "env", cfg.Environment)

	store := payroll.NewStore()
	stats := metrics.New()

	session := console.NewSession(os.Stdin, os.Stdout, store, logger, stats, cfg.PDFDir)
	session.Run()

	logger.Info("payroll session finished",
		"employees", store.Len(),
		"stats", stats.Snapshot(),
	)
}
