package ensemble_test

import (
	"context"
	"sync/atomic"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/heliostack/dcsim/internal/config"
	"github.com/heliostack/dcsim/internal/ensemble"
	"github.com/heliostack/dcsim/internal/logging"
	"github.com/heliostack/dcsim/internal/solar"
)

// meteredProvider wraps the clear-sky model and counts upstream fetches.
type meteredProvider struct {
	inner   solar.Provider
	fetches atomic.Int64
}

func (p *meteredProvider) Profile(ctx context.Context, latitude, longitude float64) (*solar.ResourceProfile, error) {
	p.fetches.Add(1)
	return p.inner.Profile(ctx, latitude, longitude)
}

var _ = Describe("Run", func() {
	var (
		sweep *config.SweepConfig
		cost  config.CostConfig
		opts  ensemble.Options
	)

	BeforeEach(func() {
		sweep = &config.SweepConfig{
			Latitude:         31.2275,
			Longitude:        -102.7403,
			DatacenterLoadMW: 100,
			GeneratorType:    config.GasEngine,
			Solar:            config.Range{Start: 0, Stop: 100, Step: 50},
			Storage:          config.Range{Start: 0, Stop: 100, Step: 50},
			Generator:        config.Range{Start: 0, Stop: 25, Step: 25},
		}
		cost = config.DefaultCostConfig()
		opts = ensemble.Options{MaxConcurrency: 4, Logger: logging.NewTestLogger()}
	})

	It("evaluates the full sweep with the clear-sky provider", func() {
		report, err := ensemble.Run(context.Background(), sweep, cost, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Table).To(HaveLen(4))

		// The empty system serves no load over its lifetime and is
		// economically undefined; everything with capacity prices cleanly.
		Expect(report.Table[0].Status).To(Equal(ensemble.StatusDomainError)) // 0 PV, 0 BESS, 0 gen
		Expect(report.Table[0].Message).To(Equal("zero lifetime energy"))
		for _, res := range report.Table[1:] {
			Expect(res.Status).To(Equal(ensemble.StatusSuccess), res.Case.SystemSpec())
			Expect(res.LevelizedCost).To(BeNumerically(">", 0))
			Expect(res.RenewableFraction).To(BeNumerically(">=", 0))
			Expect(res.RenewableFraction).To(BeNumerically("<=", 1))
		}
	})

	It("selects the least-cost success as best", func() {
		report, err := ensemble.Run(context.Background(), sweep, cost, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Best).NotTo(BeNil())
		Expect(report.Best.Succeeded()).To(BeTrue())

		for _, res := range report.Table {
			if res.Succeeded() {
				Expect(report.Best.LevelizedCost).To(BeNumerically("<=", res.LevelizedCost))
			}
		}
	})

	It("produces a frontier in ascending cost order", func() {
		report, err := ensemble.Run(context.Background(), sweep, cost, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Pareto).NotTo(BeEmpty())

		for i := 1; i < len(report.Pareto); i++ {
			Expect(report.Pareto[i-1].Cost).To(BeNumerically("<", report.Pareto[i].Cost))
			Expect(report.Pareto[i-1].RenewableFraction).To(BeNumerically("<", report.Pareto[i].RenewableFraction))
		}
		Expect(report.Pareto[0].Result.SystemSpec).To(Equal(report.Best.SystemSpec))
	})

	It("fetches the resource profile once per location", func() {
		provider := &meteredProvider{inner: solar.NewClearSkyProvider()}
		opts.Provider = provider

		_, err := ensemble.Run(context.Background(), sweep, cost, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(provider.fetches.Load()).To(Equal(int64(1)))
	})

	It("returns ErrNoFeasibleCase with the populated table when every case fails", func() {
		report, err := ensemble.Run(context.Background(), sweep, cost, ensemble.Options{
			MaxConcurrency: 2,
			Logger:         logging.NewTestLogger(),
			Evaluator:      failingEvaluator{},
		})
		Expect(err).To(MatchError(ensemble.ErrNoFeasibleCase))
		Expect(report).NotTo(BeNil())
		Expect(report.Table).NotTo(BeEmpty())
		Expect(report.Best).To(BeNil())
		Expect(report.Pareto).To(BeEmpty())
	})

	It("rejects an invalid sweep before evaluating anything", func() {
		sweep.Solar.Step = 0
		report, err := ensemble.Run(context.Background(), sweep, cost, opts)
		Expect(err).To(HaveOccurred())
		Expect(report).To(BeNil())
	})

	It("rejects a non-positive concurrency bound", func() {
		opts.MaxConcurrency = 0
		_, err := ensemble.Run(context.Background(), sweep, cost, opts)
		Expect(err).To(HaveOccurred())
	})

	It("caps displayed rows without touching the table", func() {
		opts.RowLimit = 2
		report, err := ensemble.Run(context.Background(), sweep, cost, opts)
		Expect(err).NotTo(HaveOccurred())
		Expect(report.Table).To(HaveLen(4))
		Expect(report.Rows()).To(HaveLen(2))
	})
})

// failingEvaluator marks every case as a domain error.
type failingEvaluator struct{}

func (failingEvaluator) Evaluate(_ context.Context, c ensemble.Case) ensemble.EvaluationResult {
	return ensemble.EvaluationResult{Case: c, Status: ensemble.StatusDomainError, Message: "zero lifetime energy"}
}
