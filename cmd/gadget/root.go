package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gadget/internal/config"
	"gadget/internal/log"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gadget",
		Short: "Catalog and load geospatial vector files",
		Long: `Gadget walks a directory tree for vector-data files (.shp, .gpkg,
.geojson, .kml, .csv, .xlsx, .xls, dbf), shows them in a sortable,
filterable table and loads the checked ones as layers into the active
project.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)

			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				fmt.Printf("Warning: %v\n", configErr)
				fmt.Println("Using default settings.")
				cfg = config.New()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/gadget/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewLoadCmd())
	rootCmd.AddCommand(NewGuiCmd())

	return rootCmd
}

// rootDir resolves the directory argument, falling back to the
// configured default.
func rootDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if cfg != nil && cfg.Directories.Default != "" {
		return cfg.Directories.Default
	}
	return "."
}
