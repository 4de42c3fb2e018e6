package ensemble

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heliostack/dcsim/internal/logging"
)

// trackingEvaluator observes how many evaluations run simultaneously.
type trackingEvaluator struct {
	mu      sync.Mutex
	active  int
	maxSeen int
	delay   time.Duration
}

func (e *trackingEvaluator) Evaluate(_ context.Context, c Case) EvaluationResult {
	e.mu.Lock()
	e.active++
	if e.active > e.maxSeen {
		e.maxSeen = e.active
	}
	e.mu.Unlock()

	time.Sleep(e.delay)

	e.mu.Lock()
	e.active--
	e.mu.Unlock()

	return EvaluationResult{
		Case:          c,
		SystemSpec:    c.SystemSpec(),
		LevelizedCost: float64(c.SolarCapacityMW),
		Status:        StatusSuccess,
	}
}

// panickyEvaluator panics on a chosen solar capacity and succeeds otherwise.
type panickyEvaluator struct {
	panicOnSolarMW int
}

func (e *panickyEvaluator) Evaluate(_ context.Context, c Case) EvaluationResult {
	if c.SolarCapacityMW == e.panicOnSolarMW {
		panic(fmt.Sprintf("solar %d", c.SolarCapacityMW))
	}
	return EvaluationResult{Case: c, SystemSpec: c.SystemSpec(), Status: StatusSuccess}
}

func casesFixture(n int) []Case {
	cases := make([]Case, n)
	for i := range cases {
		cases[i] = Case{SolarCapacityMW: i * 50, DatacenterLoadMW: 100, GeneratorType: "Gas Engine"}
	}
	return cases
}

func TestNewRunnerRejectsNonPositiveConcurrency(t *testing.T) {
	for _, bad := range []int{0, -1, -10} {
		_, err := NewRunner(bad, logging.NewTestLogger())
		assert.Error(t, err, "maxConcurrency=%d", bad)
	}
}

func TestRunOneResultPerCaseInOrder(t *testing.T) {
	runner, err := NewRunner(4, logging.NewTestLogger())
	require.NoError(t, err)

	cases := casesFixture(25)
	results := runner.Run(context.Background(), &trackingEvaluator{}, cases)

	require.Len(t, results, len(cases))
	for i, res := range results {
		assert.Equal(t, cases[i], res.Case, "slot %d", i)
		assert.Equal(t, StatusSuccess, res.Status)
	}
}

func TestRunHonorsConcurrencyBound(t *testing.T) {
	const bound = 3
	runner, err := NewRunner(bound, logging.NewTestLogger())
	require.NoError(t, err)

	evaluator := &trackingEvaluator{delay: 10 * time.Millisecond}
	runner.Run(context.Background(), evaluator, casesFixture(20))

	assert.LessOrEqual(t, evaluator.maxSeen, bound)
	assert.Greater(t, evaluator.maxSeen, 1, "expected some parallelism")
}

func TestRunEmptyCases(t *testing.T) {
	runner, err := NewRunner(2, logging.NewTestLogger())
	require.NoError(t, err)
	assert.Empty(t, runner.Run(context.Background(), &trackingEvaluator{}, nil))
}

func TestRunIsolatesPanics(t *testing.T) {
	runner, err := NewRunner(4, logging.NewTestLogger())
	require.NoError(t, err)

	cases := casesFixture(10)
	results := runner.Run(context.Background(), &panickyEvaluator{panicOnSolarMW: 150}, cases)

	require.Len(t, results, len(cases))
	for i, res := range results {
		if cases[i].SolarCapacityMW == 150 {
			assert.Equal(t, StatusUnknownError, res.Status)
			assert.Equal(t, "panic: solar 150", res.Message)
			assert.Equal(t, cases[i], res.Case)
			continue
		}
		assert.Equal(t, StatusSuccess, res.Status, "slot %d", i)
	}
}
