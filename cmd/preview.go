package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tiengow-preview/core/config"
	"tiengow-preview/core/launcher"
	"tiengow-preview/core/logger"
	"tiengow-preview/core/site"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// bootstrap loads configuration and installs the application logger.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}

// runPreview runs the launcher until SIGINT/SIGTERM. A missing-files abort has
// already been reported to the operator and is not a command failure.
func runPreview(cmd *cobra.Command, farewell string) error {
	cfg, logg, err := bootstrap()
	if err != nil {
		return err
	}
	defer logg.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l := launcher.New(cfg, cmd.OutOrStdout(), logg)
	if farewell != "" {
		l.Farewell = farewell
	}

	_, err = l.Run(ctx)
	var pe *site.PreconditionError
	if errors.As(err, &pe) {
		return nil
	}
	return err
}
