package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the loader version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(Version)
	},
}
