package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ytctl/internal/bulk"
)

func newBulkUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bulk-update CSV_FILE",
		Short: "Bulk-update video metadata from a CSV file",
		Long: "Bulk-update video metadata from a CSV file.\n\n" +
			"Required column: id\n" +
			"Optional columns: title, description, tags (pipe-separated), category_id, status\n" +
			"Blank optional cells preserve the existing value, except description, which\n" +
			"overwrites whenever its column is present.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("file not found: %s", args[0])
				}
				return err
			}
			defer f.Close()

			rows, err := bulk.Read(f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "CSV is empty.")
				return nil
			}

			ctx := cmd.Context()
			client, cfg, err := newClient(ctx)
			if err != nil {
				return err
			}

			runner := bulk.NewRunner(client, cfg.BulkUpdateDelay, out, logger)
			res, err := runner.Run(ctx, rows)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "\nDone. Updated %d videos, skipped %d.\n", res.Updated, res.Skipped)
			return nil
		},
	}
}
