package diag

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrintOpts controls terminal rendering of unresolved diagnostics.
type PrintOpts struct {
	// Color enables ANSI color output.
	Color bool
}

// PrintAll writes diagnostics to w in the given order (the scanner's
// order of appearance).
func PrintAll(w io.Writer, diags []Diagnostic, opts PrintOpts) {
	printDiags(w, diags, opts)
}

// Print writes every unresolved diagnostic to w, one per line, in sorted
// name order. With color enabled, names render bold red and positions dim.
func (u Unresolved) Print(w io.Writer, opts PrintOpts) {
	diags := make([]Diagnostic, 0, len(u))
	for _, name := range u.Names() {
		diags = append(diags, u[name])
	}

	printDiags(w, diags, opts)
}

func printDiags(w io.Writer, diags []Diagnostic, opts PrintOpts) {
	nameCol := color.New(color.FgRed, color.Bold)
	posCol := color.New(color.Faint)
	hintCol := color.New(color.FgYellow)

	if !opts.Color {
		nameCol.DisableColor()
		posCol.DisableColor()
		hintCol.DisableColor()
	}

	for _, d := range diags {
		fmt.Fprintf(w, "%s %s %s\n",
			nameCol.Sprint(d.Name),
			posCol.Sprint("("+d.Pos()+")"),
			d.Message)

		for _, s := range d.Suggestions {
			fmt.Fprintf(w, "  %s\n", hintCol.Sprintf("hint: did you mean %q?", s))
		}
	}
}
