package main

import (
	"github.com/spf13/cobra"

	"gadget/internal/tui"
)

// NewBrowseCmd creates the browse command
func NewBrowseCmd() *cobra.Command {
	var geometry bool
	var watchChanges bool

	cmd := &cobra.Command{
		Use:   "browse [directory]",
		Short: "Browse a directory tree interactively",
		Long: `Scan a directory tree and browse the matching vector files in an
interactive table. Check rows with the space bar and press enter to
load them as layers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("geometry") {
				cfg.Scan.GeometryTypes = geometry
			}
			if cmd.Flags().Changed("watch") {
				cfg.Watch.Enabled = watchChanges
			}
			return tui.Run(cfg, rootDir(args))
		},
	}

	cmd.Flags().BoolVarP(&geometry, "geometry", "g", false, "probe .shp files for their geometry type")
	cmd.Flags().BoolVarP(&watchChanges, "watch", "w", false, "rescan when files change under the root")

	return cmd
}
