package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [flags] header.h",
	Short: "Invoke the declaration translator and print its raw output",
	Long:  `Translate runs the external translator on a C header and prints the generated source, failure markers included, without repairing anything`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTranslate,
}

func init() {
	addTranslatorFlags(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	runner, err := runnerFromFlags(cmd)
	if err != nil {
		return err
	}

	out, err := runner.Translate(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	fmt.Fprint(os.Stdout, out)

	return nil
}
