package ensemble

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/heliostack/dcsim/internal/metrics"
)

// Runner executes case evaluations under a bounded-concurrency policy.
type Runner struct {
	maxConcurrency int
	log            logr.Logger
}

// NewRunner builds a Runner. maxConcurrency must be at least 1; anything
// lower is invalid configuration and rejected before any work begins.
func NewRunner(maxConcurrency int, log logr.Logger) (*Runner, error) {
	if maxConcurrency < 1 {
		return nil, fmt.Errorf("max concurrency must be >= 1, got %d", maxConcurrency)
	}
	return &Runner{maxConcurrency: maxConcurrency, log: log}, nil
}

// Run evaluates every case and returns exactly one result per case, in
// generation order. Case isolation is total: an evaluation failure, or
// even a panicking evaluator, is recorded in that case's slot and cannot
// abort any other case. Run blocks until all cases complete; there is no
// cancellation once started.
func (r *Runner) Run(ctx context.Context, evaluator Evaluator, cases []Case) []EvaluationResult {
	total := len(cases)
	r.log.Info("starting ensemble run", "cases", total, "maxConcurrency", r.maxConcurrency)

	results := make([]EvaluationResult, total)

	// A plain group, not WithContext: one case must never cancel another.
	var g errgroup.Group
	g.SetLimit(r.maxConcurrency)

	for i, c := range cases {
		g.Go(func() error {
			defer func() {
				if p := recover(); p != nil {
					results[i] = EvaluationResult{
						Case:    c,
						Status:  StatusUnknownError,
						Message: fmt.Sprintf("panic: %v", p),
					}
				}
				metrics.CasesTotal.WithLabelValues(string(results[i].Status)).Inc()
			}()
			results[i] = evaluator.Evaluate(ctx, c)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	succeeded := 0
	for _, res := range results {
		if res.Succeeded() {
			succeeded++
		}
	}
	r.log.Info("ensemble run complete", "cases", total, "succeeded", succeeded)

	return results
}
