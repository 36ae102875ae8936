package translate

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultTool is the translator binary consulted when the caller does
// not name one.
const DefaultTool = "zig"

// Runner invokes the declaration translator for one or more headers.
type Runner struct {
	// Tool is the translator binary. Empty means DefaultTool.
	Tool string

	// IncludeDirs are passed as -I arguments.
	IncludeDirs []string

	// Defines are passed as -D arguments (name or name=value).
	Defines []string

	// ExtraArgs are appended verbatim after the generated arguments.
	ExtraArgs []string

	// Cache holds previously translated output, or nil to always invoke.
	Cache *Cache
}

// Args returns the full argument list for translating header, excluding
// the binary name. The contract: `translate-c [-I dir]... [-D def]...
// [extra...] <header>`.
func (r *Runner) Args(header string) []string {
	args := []string{"translate-c"}

	for _, dir := range r.IncludeDirs {
		args = append(args, "-I", dir)
	}

	for _, def := range r.Defines {
		args = append(args, "-D", def)
	}

	args = append(args, r.ExtraArgs...)
	args = append(args, header)

	return args
}

func (r *Runner) tool() string {
	if r.Tool == "" {
		return DefaultTool
	}

	return r.Tool
}

// Translate runs the translator on header and returns its generated
// source. Output is served from the cache when the header contents and
// arguments match a previous run. Cancellation and timeouts come from
// ctx; the repair core itself has no timeout semantics.
func (r *Runner) Translate(ctx context.Context, header string) (string, error) {
	args := r.Args(header)

	key, err := r.Cache.Key(header, args)
	if err == nil {
		if out, hit := r.Cache.Get(key); hit {
			return out, nil
		}
	}

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, r.tool(), args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if runErr := cmd.Run(); runErr != nil {
		return "", fmt.Errorf("translator %s failed on %s: %w%s",
			r.tool(), header, runErr, stderrTail(stderr.String()))
	}

	out := stdout.String()

	if err == nil {
		// Best effort: a cache write failure never fails the translation.
		_ = r.Cache.Put(key, out)
	}

	return out, nil
}

// stderrTail formats the last lines of translator stderr for error
// messages.
func stderrTail(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}

	return ": " + strings.Join(lines, "; ")
}
