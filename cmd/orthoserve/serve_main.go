package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/basislab/orthoserve/internal/config"
	orthohttp "github.com/basislab/orthoserve/internal/interfaces/http"
	"github.com/basislab/orthoserve/internal/metrics"
)

// runServe starts the orthonormalization HTTP server.
func runServe(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if host, _ := cmd.Flags().GetString("host"); host != "" {
		cfg.Server.Host = host
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Server.Port = port
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	registry := metrics.NewRegistry()

	server, err := orthohttp.NewServer(cfg, registry, version)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("orthonormal", fmt.Sprintf("http://%s/orthonormal", server.Addr())).
			Str("check", fmt.Sprintf("http://%s/check-orthonormal", server.Addr())).
			Str("health", fmt.Sprintf("http://%s/health", server.Addr())).
			Str("metrics", fmt.Sprintf("http://%s/metrics", server.Addr())).
			Msg("Endpoints available")

		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		log.Info().Msg("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown error")
		return err
	}

	log.Info().Msg("Server shutdown complete")
	return nil
}
