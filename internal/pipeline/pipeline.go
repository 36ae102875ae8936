package pipeline

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cbind-repair/internal/diag"
	"cbind-repair/internal/normalize"
	"cbind-repair/internal/policy"
	"cbind-repair/internal/repair"
	"cbind-repair/internal/translate"
)

// Result is the outcome for one input: normalized source on success, or
// the unresolved diagnostic map. Exactly one of the two is set.
type Result struct {
	// Name identifies the input (header path or source file path).
	Name string

	// Source is the repaired, normalized binding source.
	Source string

	// Unresolved is non-empty when the policy chain left failures behind.
	Unresolved diag.Unresolved
}

// Ok reports whether the input repaired cleanly.
func (r Result) Ok() bool {
	return r.Unresolved.IsEmpty()
}

// Run repairs translator output under p and normalizes the survivor.
// Empty input (a failed translation upstream) flows through as empty
// normalized output containing only the metadata anchor.
func Run(translated string, p policy.Policy) Result {
	repaired, unresolved := repair.Repair(translated, p)
	if !unresolved.IsEmpty() {
		return Result{Unresolved: unresolved}
	}

	return Result{Source: normalize.Normalize(repaired)}
}

// HeaderRunner drives the full translate-repair-normalize flow for
// header files.
type HeaderRunner struct {
	Runner *translate.Runner
	Policy policy.Policy

	// Jobs bounds concurrent header translations. Zero means GOMAXPROCS.
	Jobs int
}

// RunHeader translates one header and repairs its output.
func (h *HeaderRunner) RunHeader(ctx context.Context, header string) (Result, error) {
	translated, err := h.Runner.Translate(ctx, header)
	if err != nil {
		return Result{}, fmt.Errorf("translating %s: %w", header, err)
	}

	res := Run(translated, h.Policy)
	res.Name = header

	return res, nil
}

// RunHeaders processes headers concurrently and returns results in input
// order. Per-header results are independent; a translator invocation
// error cancels the remaining work, while unresolved diagnostics do not
// (they are data, not errors).
func (h *HeaderRunner) RunHeaders(ctx context.Context, headers []string) ([]Result, error) {
	results := make([]Result, len(headers))

	g, ctx := errgroup.WithContext(ctx)

	jobs := h.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g.SetLimit(jobs)

	for i, header := range headers {
		i, header := i, header
		g.Go(func() error {
			res, err := h.RunHeader(ctx, header)
			if err != nil {
				return err
			}

			results[i] = res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
