package cmd

import (
	"encoding/json"
	"fmt"

	"tiengow-preview/core/site"
	"tiengow-preview/core/storage"
	"tiengow-preview/feature/publish"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// publishCmd represents the publish command
var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Upload the site to S3/MinIO",
	Long:  `Checks the required files and uploads every site file to the configured bucket.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		prune, _ := cmd.Flags().GetBool("prune")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		defer logg.Sync()

		root, err := site.ResolveRoot(cfg.Site.Root)
		if err != nil {
			return err
		}

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := publish.NewService(client, cfg.Storage, cfg.Publish.Prefix, logg)
		logg.Info("Publishing site",
			zap.String("root", root),
			zap.String("bucket", cfg.Storage.Bucket),
			zap.Bool("dry_run", dryRun))

		report, err := svc.Publish(cmd.Context(), root, cfg.Site.Required(), publish.Options{DryRun: dryRun, Prune: prune})
		if err != nil {
			return fmt.Errorf("publish failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if jsonOutput {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		verb := "Uploaded"
		if report.DryRun {
			verb = "Would upload"
		}
		for _, obj := range report.Uploaded {
			fmt.Fprintf(out, "  %s (%s)\n", obj.Key, humanize.Bytes(uint64(obj.Size)))
		}
		fmt.Fprintf(out, "%s %d files (%s) to bucket %s\n", verb, len(report.Uploaded), humanize.Bytes(uint64(report.Bytes)), report.Bucket)
		if len(report.Removed) > 0 {
			fmt.Fprintf(out, "Removed %d stale objects\n", len(report.Removed))
		}
		return nil
	},
}

func init() {
	publishCmd.Flags().Bool("dry-run", false, "List the objects without uploading")
	publishCmd.Flags().Bool("prune", false, "Delete objects under the prefix that no longer exist locally")
	publishCmd.Flags().Bool("json", false, "Output the report as JSON")
	RootCmd.AddCommand(publishCmd)
}
