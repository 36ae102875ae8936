package main

import (
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"cbind-repair/internal/diag"
	"cbind-repair/internal/scan"
)

var scanCmd = &cobra.Command{
	Use:   "scan [flags] generated.zig",
	Short: "List translator failure diagnostics in generated source",
	Long:  `Scan reads already-translated source and lists every failure the translator reported, in order of appearance, without repairing anything`,
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().Bool("debug", false, "dump full diagnostic records")
}

func runScan(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read source %s: %w", args[0], err)
	}

	diags := scan.Scan(string(data))

	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("failed to get debug flag: %w", err)
	}

	if debug {
		spew.Fdump(os.Stdout, diags)
		return nil
	}

	if len(diags) == 0 {
		fmt.Println("no diagnostics found")
		return nil
	}

	diag.PrintAll(os.Stdout, diags, diag.PrintOpts{Color: useColor(cmd, os.Stdout)})

	return nil
}
