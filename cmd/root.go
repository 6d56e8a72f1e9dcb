package cmd

import (
	"fmt"
	"os"

	"tiengow-preview/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands.
// Running it directly starts the preview server.
var RootCmd = &cobra.Command{
	Use:   "tiengow-preview",
	Short: "Local preview server for the Tien Gow analyzer",
	Long: `Serves the Tien Gow analyzer's static files on http://localhost:8000 with
permissive CORS headers and opens it in the default browser.

The required files are checked before the port is bound. The site root is the
directory holding the executable (the working directory under "go run");
set SITE_ROOT to serve another directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPreview(cmd, "")
	},
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format at debug level gives ISO8601 timestamps for CLI output
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
