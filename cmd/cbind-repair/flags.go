package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cbind-repair/internal/translate"
)

// addTranslatorFlags registers the flags shared by every command that
// invokes the external translator.
func addTranslatorFlags(cmd *cobra.Command) {
	cmd.Flags().String("tool", translate.DefaultTool, "translator binary to invoke")
	cmd.Flags().StringArrayP("include", "I", nil, "additional include directory (repeatable)")
	cmd.Flags().StringArrayP("define", "D", nil, "preprocessor define name[=value] (repeatable)")
	cmd.Flags().StringArray("translator-arg", nil, "extra argument passed to the translator verbatim (repeatable)")
	cmd.Flags().Bool("no-cache", false, "bypass the translation cache")
}

// runnerFromFlags builds a translate.Runner from the command's flags.
func runnerFromFlags(cmd *cobra.Command) (*translate.Runner, error) {
	tool, err := cmd.Flags().GetString("tool")
	if err != nil {
		return nil, fmt.Errorf("failed to get tool flag: %w", err)
	}

	includes, err := cmd.Flags().GetStringArray("include")
	if err != nil {
		return nil, fmt.Errorf("failed to get include flag: %w", err)
	}

	defines, err := cmd.Flags().GetStringArray("define")
	if err != nil {
		return nil, fmt.Errorf("failed to get define flag: %w", err)
	}

	extra, err := cmd.Flags().GetStringArray("translator-arg")
	if err != nil {
		return nil, fmt.Errorf("failed to get translator-arg flag: %w", err)
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	runner := &translate.Runner{
		Tool:        tool,
		IncludeDirs: includes,
		Defines:     defines,
		ExtraArgs:   extra,
	}

	if !noCache {
		cache, err := translate.OpenCache("cbind-repair")
		if err == nil {
			runner.Cache = cache
		}
		// A cache that cannot be opened just means every run translates.
	}

	return runner, nil
}
