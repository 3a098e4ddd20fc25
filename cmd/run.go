package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jekabolt/sales-panel/app"
	"github.com/jekabolt/sales-panel/config"
	"github.com/jekabolt/sales-panel/log"
	"github.com/spf13/cobra"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	logger := log.New(os.Stdout, cfg.Logger)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	a := app.New(cfg)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application %v", err.Error())
	}

	select {
	case <-ctx.Done():
		logger.Warn("signal received, exiting")
		// ctx is already cancelled, shutdown gets a fresh one
		a.Stop(context.Background())
		logger.Info("application exited")
	case <-a.Done():
		logger.Error("application exited")
	}
	return nil
}
