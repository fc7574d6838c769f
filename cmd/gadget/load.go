package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gadget/internal/catalog"
	"gadget/internal/host"
	"gadget/internal/scan"
	"gadget/pkg/types"
)

// NewLoadCmd creates the load command
func NewLoadCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "load [directory]",
		Short: "Scan a directory tree and load matching files as layers",
		Long: `Scan a directory tree, select every file whose name matches the
filter and load the selection as project layers. Failures are reported
per file and never abort the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootDir(args)

			engine := scan.NewWithConfig(cfg)
			records, err := engine.Scan(root, nil)
			if err != nil {
				return fmt.Errorf("error scanning %s: %w", root, err)
			}

			cat := catalog.New()
			cat.Replace(records)
			cat.SetFilter(filter)
			for _, rec := range cat.View() {
				cat.SetState(rec.Path, types.Checked)
			}

			project := host.NewProject()
			loader := host.NewLoader(host.NewVectorOpener(), project)
			loaded, failed := loader.Load(cat.Checked())

			for _, layer := range project.Layers() {
				if layer.GeometryType != "" {
					fmt.Printf("loaded %s (%s)\n", layer.Name, layer.GeometryType)
				} else {
					fmt.Printf("loaded %s\n", layer.Name)
				}
			}
			fmt.Printf("%d layers loaded, %d failed\n", loaded, len(failed))
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter filenames (use * as wildcard)")

	return cmd
}
