package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"livestock-tracker/internal/config"
	"livestock-tracker/internal/platform/logger"
)

// @title Livestock Tracker API
// @version 1.0
// @description Rebaño, alertas, perfil y mapa de un productor ganadero.
// @BasePath /
func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "ruta al YAML de configuración (opcional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
