package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cbind-repair/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the cbind-repair version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println("cbind-repair", version.Version)
	},
}
