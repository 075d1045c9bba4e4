package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forager",
		Short: "Serve IIIF Presentation manifests for directories of images",
		Long: `Forager exposes a directory tree of image files as IIIF Presentation API v2
manifests. Each directory under the source root becomes an item whose images
are published as one sequence of canvases, enriched with optional sidecar
metadata found next to the images.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newInventoryCmd())

	return cmd
}
