package main

import (
	"fmt"
	"os"
)

var version = "dev"

// Entry point for the application
func main() {
	rootCmd := NewRootCmd()
	rootCmd.Version = version

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
