package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"gadget/internal/catalog"
	"gadget/internal/scan"
)

// NewScanCmd creates the scan command
func NewScanCmd() *cobra.Command {
	var jsonOutput bool
	var filter string
	var geometry bool

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Scan a directory tree and print the catalog",
		Long:  `Scan a directory tree for vector files and print one row per match.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := rootDir(args)
			if cmd.Flags().Changed("geometry") {
				cfg.Scan.GeometryTypes = geometry
			}

			engine := scan.NewWithConfig(cfg)
			records, err := engine.Scan(root, nil)
			if err != nil {
				return fmt.Errorf("error scanning %s: %w", root, err)
			}

			cat := catalog.New()
			cat.Replace(records)
			cat.SetFilter(filter)

			if jsonOutput {
				for _, rec := range cat.View() {
					fmt.Println(rec.ToJSON())
				}
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tDATE\tDIRECTORY\tGEOMETRY\tEXT\tSIZE")
			for _, rec := range cat.View() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					rec.Name, rec.ModDate, rec.Dir, rec.GeometryType, rec.Extension,
					humanize.Bytes(uint64(rec.Size)))
			}
			w.Flush()

			fmt.Printf("\n%d of %d files shown\n", cat.ViewLen(), cat.Len())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output records as JSON, one per line")
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Filter filenames (use * as wildcard)")
	cmd.Flags().BoolVarP(&geometry, "geometry", "g", false, "Probe .shp files for their geometry type")

	return cmd
}
