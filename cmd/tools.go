package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jekabolt/sales-panel/config"
	"github.com/jekabolt/sales-panel/internal/auth/jwt"
	"github.com/jekabolt/sales-panel/internal/reenrich"
	"github.com/jekabolt/sales-panel/internal/store"
	"github.com/jekabolt/sales-panel/log"
	"github.com/spf13/cobra"
)

var (
	reenrichCmd = &cobra.Command{
		Use:   "reenrich",
		Short: "Recompute the stored costs of every order against the current catalog",
		RunE:  runReenrich,
	}

	tokenCmd = &cobra.Command{
		Use:   "token",
		Short: "Issue an API token signed with http.jwt_secret (development only)",
		RunE:  runToken,
	}

	tokenSubject string
	tokenTTL     time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "dev", "token subject written to audit logs")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime")
}

func runReenrich(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(os.Stdout, cfg.Logger))

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()

	db, err := store.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("couldn't connect to mysql: %w", err)
	}
	defer db.Close()

	n, err := reenrich.Recompute(ctx, db, nil)
	if err != nil {
		return err
	}
	fmt.Printf("%d orders updated\n", n)
	return nil
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("cannot load a config %v", err.Error())
	}
	if cfg.HTTP.JWTSecret == "" {
		return fmt.Errorf("http.jwt_secret is not set")
	}
	tok, err := jwt.NewTokenWithSubject(jwt.New(cfg.HTTP.JWTSecret), tokenTTL, tokenSubject)
	if err != nil {
		return err
	}
	fmt.Println(tok)
	return nil
}
