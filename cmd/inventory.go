package cmd

import (
	"log/slog"

	"github.com/lehigh-university-libraries/forager/internal/inventory"
	"github.com/spf13/cobra"
)

func newInventoryCmd() *cobra.Command {
	var (
		output     string
		urlPathSep string
	)

	cmd := &cobra.Command{
		Use:   "inventory SOURCE",
		Short: "Export a parquet inventory of all publishable images",
		Long: `Scans the whole source tree the way the server would and writes one
parquet row per classifiable image: item id, file name, format and pixel
dimensions. Useful for auditing what a source directory will publish.`,
		Example: `  forager inventory /data/books -o books.parquet`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := inventory.Scan(args[0], urlPathSep)
			if err != nil {
				return err
			}
			if err := inventory.WriteFile(output, records); err != nil {
				return err
			}
			slog.Info("Inventory written", "output", output, "images", len(records))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "inventory.parquet", "Path of the parquet file to write")
	cmd.Flags().StringVarP(&urlPathSep, "url-path-sep", "u", "-", "Separator for paths when turning these into ids")

	return cmd
}
