package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/raykavin/dexscout"
	"github.com/raykavin/dexscout/pkg/config"
	"github.com/raykavin/dexscout/pkg/logger"
	"github.com/raykavin/dexscout/pkg/shell"
	"github.com/spf13/cobra"
)

// Command line flags
var (
	logLevel string
	envFile  string
	noColor  bool
	width    int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "dexscout",
		Short:        "Fetch DEX Screener pairs, show the top five and forward them to Telegram",
		Version:      "1.0.0",
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "Log level (overrides "+config.EnvLogLevel+")")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "Optional dotenv file loaded before reading the environment")
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colors on the screen")
	rootCmd.Flags().IntVarP(&width, "width", "w", 100, "Screen width in columns")

	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	// A missing dotenv file is fine, the plain environment is used instead
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := dexscout.NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	if logLevel != "" {
		level, err := logger.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	dexscout.DefaultLog = log

	// Credentials are read again on every run, so they may still be set later
	if err := cfg.Telegram.Validate(); err != nil {
		log.WithError(err).Warn("telegram notifications will fail until credentials are set")
	}

	app := dexscout.New(
		dexscout.WithLogger(log),
		dexscout.WithFetchTimeout(cfg.Fetch.Timeout),
		dexscout.WithOutput(cmd.OutOrStdout()),
		dexscout.WithScreenOptions(
			shell.WithColors(!noColor),
			shell.WithClear(!noColor),
			shell.WithWidth(width),
		),
	)

	return app.Run(cmd.Context(), cmd.InOrStdin())
}
