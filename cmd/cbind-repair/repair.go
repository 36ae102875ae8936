package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cbind-repair/internal/diag"
	"cbind-repair/internal/output"
	"cbind-repair/internal/pipeline"
	"cbind-repair/internal/policy"
)

var repairCmd = &cobra.Command{
	Use:   "repair [flags] header.h...",
	Short: "Translate headers and repair the result into binding source",
	Long: `Repair runs the full pipeline: translate each header, resolve every
translator failure through the replacement policy, collapse duplicate
type aliases, and attach parameter metadata. Unresolved failures are
listed so the policy can be refined and the run retried.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRepair,
}

func init() {
	addTranslatorFlags(repairCmd)

	repairCmd.Flags().StringP("policy", "p", "", "YAML replacement policy file")
	repairCmd.Flags().StringP("out-dir", "o", ".", "directory for normalized binding sources")
	repairCmd.Flags().Bool("from-source", false, "treat inputs as already-translated source, skip the translator")
	repairCmd.Flags().IntP("jobs", "j", 0, "concurrent header translations (0 = number of CPUs)")
}

func runRepair(cmd *cobra.Command, args []string) error {
	pol, err := policyFromFlags(cmd)
	if err != nil {
		return err
	}

	fromSource, err := cmd.Flags().GetBool("from-source")
	if err != nil {
		return fmt.Errorf("failed to get from-source flag: %w", err)
	}

	outDir, err := cmd.Flags().GetString("out-dir")
	if err != nil {
		return fmt.Errorf("failed to get out-dir flag: %w", err)
	}

	var results []pipeline.Result

	if fromSource {
		results, err = repairSources(args, pol)
	} else {
		results, err = repairHeaders(cmd, args, pol)
	}

	if err != nil {
		return err
	}

	var files []output.GeneratedFile

	failed := 0

	for _, res := range results {
		if !res.Ok() {
			failed++

			fmt.Fprintf(os.Stderr, "%s: %d unresolved diagnostic(s)\n", res.Name, len(res.Unresolved))
			res.Unresolved.Print(os.Stderr, diag.PrintOpts{Color: useColor(cmd, os.Stderr)})

			continue
		}

		files = append(files, output.GeneratedFile{
			Filename: output.BindingFilename(res.Name),
			Content:  []byte(res.Source),
		})
	}

	if len(files) > 0 {
		if err := output.WriteFiles(files, outDir); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d input(s) left unresolved diagnostics", failed, len(results))
	}

	return nil
}

// policyFromFlags loads the policy file when given, or the defaults.
func policyFromFlags(cmd *cobra.Command) (policy.Policy, error) {
	path, err := cmd.Flags().GetString("policy")
	if err != nil {
		return policy.Policy{}, fmt.Errorf("failed to get policy flag: %w", err)
	}

	if path == "" {
		return policy.Default(), nil
	}

	return policy.LoadFile(path)
}

// repairSources runs repair and normalization over already-translated
// source files.
func repairSources(paths []string, pol policy.Policy) ([]pipeline.Result, error) {
	results := make([]pipeline.Result, 0, len(paths))

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read source %s: %w", path, err)
		}

		res := pipeline.Run(string(data), pol)
		res.Name = path

		results = append(results, res)
	}

	return results, nil
}

// repairHeaders translates headers concurrently and repairs each result.
func repairHeaders(cmd *cobra.Command, headers []string, pol policy.Policy) ([]pipeline.Result, error) {
	runner, err := runnerFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	h := &pipeline.HeaderRunner{
		Runner: runner,
		Policy: pol,
		Jobs:   jobs,
	}

	return h.RunHeaders(cmd.Context(), headers)
}
