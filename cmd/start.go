package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// startCmd represents the quick start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "One-step start: serve the analyzer and open it in the browser",
	Long:  `Quick start for the preview server. Behaves exactly like running the root command.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "🚀 Launching the Tien Gow Analyzer...")
		fmt.Fprintln(out, "⏱️  Getting ready, your browser will open shortly...")

		return runPreview(cmd, "✅ Service stopped\n👋 Thanks for using the Tien Gow Analyzer!")
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
