package ensemble

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/heliostack/dcsim/internal/config"
	"github.com/heliostack/dcsim/internal/metrics"
	"github.com/heliostack/dcsim/internal/solar"
)

// Options tune a Run beyond the sweep and cost configuration.
type Options struct {
	// MaxConcurrency bounds simultaneous evaluations. Must be >= 1.
	MaxConcurrency int
	// CacheCapacity bounds the solar profile cache; 0 means
	// solar.DefaultCacheCapacity.
	CacheCapacity int
	// RowLimit caps the raw rows exposed for display, 0 meaning
	// unlimited. It never affects computation over the full table.
	RowLimit int
	// Provider overrides the resource provider; nil means clear-sky.
	Provider solar.Provider
	// Evaluator overrides the whole evaluation path; nil means the
	// simulator-backed evaluator.
	Evaluator Evaluator

	Logger logr.Logger
}

// Report is the outcome of a complete ensemble run.
type Report struct {
	// Table holds one result per generated case, in generation order.
	Table []EvaluationResult
	// Best is the least-cost successful case, nil when the run failed.
	Best *EvaluationResult
	// Pareto is the non-dominated frontier in ascending cost order.
	Pareto []ParetoPoint
	// GeneratedAt stamps every rendered row of this run.
	GeneratedAt time.Time
	// RowLimit is carried through for renderers; see Rows.
	RowLimit int
}

// Rows returns the raw table capped at the configured row limit.
func (r *Report) Rows() []EvaluationResult {
	if r.RowLimit <= 0 || r.RowLimit >= len(r.Table) {
		return r.Table
	}
	return r.Table[:r.RowLimit]
}

// Run executes the full ensemble: generate the sweep, evaluate every case
// under the concurrency bound, and aggregate.
//
// Input validation errors abort before any case is evaluated. A run whose
// cases all fail returns the populated report together with
// ErrNoFeasibleCase so callers can distinguish "no usable result" from a
// table that merely contains error rows.
func Run(ctx context.Context, sweep *config.SweepConfig, cost config.CostConfig, opts Options) (*Report, error) {
	start := time.Now()
	defer func() {
		metrics.RunDuration.Observe(time.Since(start).Seconds())
	}()
	log := opts.Logger

	cases, err := GenerateCases(sweep)
	if err != nil {
		return nil, err
	}
	log.Info("generated sweep", "cases", len(cases),
		"solar", sweep.Solar, "storage", sweep.Storage, "generator", sweep.Generator)

	evaluator := opts.Evaluator
	if evaluator == nil {
		provider := opts.Provider
		if provider == nil {
			provider = solar.NewClearSkyProvider()
		}
		capacity := opts.CacheCapacity
		if capacity == 0 {
			capacity = solar.DefaultCacheCapacity
		}
		cache, err := solar.NewProfileCache(provider, capacity)
		if err != nil {
			return nil, err
		}
		evaluator, err = NewSimEvaluator(cache, cost, log)
		if err != nil {
			return nil, err
		}
	}

	runner, err := NewRunner(opts.MaxConcurrency, log)
	if err != nil {
		return nil, fmt.Errorf("configuring runner: %w", err)
	}

	report := &Report{
		Table:       runner.Run(ctx, evaluator, cases),
		GeneratedAt: time.Now(),
		RowLimit:    opts.RowLimit,
	}
	report.Pareto = ParetoFrontier(report.Table)

	best, err := BestCase(report.Table)
	if err != nil {
		log.Info("ensemble produced no successful case", "cases", len(cases))
		return report, err
	}
	report.Best = &best

	log.Info("ensemble complete",
		"best", best.SystemSpec,
		"lcoe", best.LevelizedCost,
		"renewableFraction", best.RenewableFraction,
		"paretoPoints", len(report.Pareto),
		"elapsed", time.Since(start).String())

	return report, nil
}
