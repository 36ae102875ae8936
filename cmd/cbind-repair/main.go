// Package main provides the CLI entrypoint for cbind-repair.
//
// cbind-repair turns a native C header into directly callable binding
// source by:
//   - Invoking an external declaration translator on the header
//   - Repairing the declarations the translator could not express,
//     under a configurable per-declaration replacement policy
//   - Collapsing the duplicate type-alias pairs the translator emits
//     and attaching parameter-name metadata for reflective invocation
package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cbind-repair/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "cbind-repair",
	Short: "Repair and normalize translated C header bindings",
	Long:  `cbind-repair invokes a header-to-source declaration translator and repairs the parts of its output the translator could not express`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(translateCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// useColor resolves the color flag against whether f is a terminal.
func useColor(cmd *cobra.Command, f *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(f))
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
