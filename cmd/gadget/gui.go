package main

import (
	"github.com/spf13/cobra"

	"gadget/internal/gui"
)

// NewGuiCmd creates the gui command
func NewGuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the catalog in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return gui.StartGUI(cfg)
		},
	}
}
