package cmd

import (
	"encoding/json"
	"fmt"

	"tiengow-preview/core/config"
	"tiengow-preview/core/site"

	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the required site files exist",
	Long:  `Runs the startup precheck without binding a port. Exits non-zero when files are missing.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		root, err := site.ResolveRoot(cfg.Site.Root)
		if err != nil {
			return err
		}

		return runCheck(cmd, root, cfg.Site.Required(), jsonOutput)
	},
}

func runCheck(cmd *cobra.Command, root string, required []string, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	missing := site.Missing(root, required)

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(map[string]any{
			"root":     root,
			"required": required,
			"missing":  missing,
		}); err != nil {
			return err
		}
	} else if len(missing) == 0 {
		fmt.Fprintf(out, "✅ All %d required files are present in %s\n", len(required), root)
	} else {
		fmt.Fprintf(out, "❌ Missing %d of %d required files in %s:\n", len(missing), len(required), root)
		for _, file := range missing {
			fmt.Fprintf(out, "   - %s\n", file)
		}
	}

	if len(missing) > 0 {
		return &site.PreconditionError{Root: root, Missing: missing}
	}
	return nil
}

func init() {
	checkCmd.Flags().Bool("json", false, "Output the result as JSON")
	RootCmd.AddCommand(checkCmd)
}
