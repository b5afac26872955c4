package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	appName = "orthoserve"
	version = "v1.0.0"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	rootCmd := &cobra.Command{
		Use:     appName,
		Short:   "Gram-Schmidt orthonormal basis service",
		Version: version,
		Long: `orthoserve computes orthonormal bases from real vector sets using
classical Gram-Schmidt orthonormalization, reporting the numerical rank and
detecting linear dependence.

Run 'orthoserve serve' to expose the HTTP API, or 'orthoserve basis' /
'orthoserve check' for one-shot computations from a file or stdin.`,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace|debug|info|warn|error)")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		levelStr, _ := cmd.Flags().GetString("log-level")
		level, err := zerolog.ParseLevel(levelStr)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelStr, err)
		}
		zerolog.SetGlobalLevel(level)
		return nil
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the orthonormalization HTTP server",
		Long:  "Starts the HTTP API with /orthonormal, /check-orthonormal, /health and /metrics endpoints",
		RunE:  runServe,
	}
	serveCmd.Flags().String("config", "", "Path to YAML config file")
	serveCmd.Flags().String("host", "", "Override listen host")
	serveCmd.Flags().Int("port", 0, "Override listen port")

	basisCmd := &cobra.Command{
		Use:   "basis [file]",
		Short: "Compute an orthonormal basis from vectors in a file or stdin",
		Long: `Reads vectors as free text (one vector per line, or bracket groups like
"[1, 2, 3]"), orthonormalizes them and prints the basis and rank.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBasis,
	}
	basisCmd.Flags().Float64("tolerance", 0, "Dependence threshold (0 uses the engine default)")
	basisCmd.Flags().Bool("strict", false, "Fail on any linearly dependent vector instead of skipping it")

	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check whether vectors in a file or stdin are orthonormal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().Float64("tolerance", 0, "Deviation threshold (0 uses the engine default)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(basisCmd)
	rootCmd.AddCommand(checkCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
