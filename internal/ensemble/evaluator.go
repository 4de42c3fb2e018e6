package ensemble

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/heliostack/dcsim/internal/config"
	"github.com/heliostack/dcsim/internal/finance"
	"github.com/heliostack/dcsim/internal/logging"
	"github.com/heliostack/dcsim/internal/powerflow"
	"github.com/heliostack/dcsim/internal/solar"
)

// zeroEnergyReason is the normalized message attached to domain errors so
// economically undefined configurations can be filtered downstream.
const zeroEnergyReason = "zero lifetime energy"

// ProfileSource yields resource profiles for evaluation. Satisfied by
// *solar.ProfileCache and by any solar.Provider.
type ProfileSource interface {
	Profile(ctx context.Context, latitude, longitude float64) (*solar.ResourceProfile, error)
}

// Evaluator turns one Case into one EvaluationResult. Implementations must
// never fail the call itself: every outcome, including collaborator
// errors, is expressed in the result's status tag.
type Evaluator interface {
	Evaluate(ctx context.Context, c Case) EvaluationResult
}

// SimEvaluator evaluates cases against the power-flow simulator and the
// financial model. Safe for concurrent use; the only shared state is the
// profile source.
type SimEvaluator struct {
	profiles ProfileSource
	cost     config.CostConfig
	log      logr.Logger
}

// NewSimEvaluator builds an evaluator over the given profile source and
// cost assumptions.
func NewSimEvaluator(profiles ProfileSource, cost config.CostConfig, log logr.Logger) (*SimEvaluator, error) {
	if profiles == nil {
		return nil, fmt.Errorf("profile source cannot be nil")
	}
	return &SimEvaluator{profiles: profiles, cost: cost, log: log}, nil
}

// Evaluate validates, simulates, and prices one case. Cases are
// re-validated here even though GenerateCases enforces the same bounds:
// evaluation must stay safe for cases built outside the sweep.
func (e *SimEvaluator) Evaluate(ctx context.Context, c Case) EvaluationResult {
	if reason := validateCase(c); reason != "" {
		return EvaluationResult{Case: c, Status: StatusCaseInvalid, Message: reason}
	}

	profile, err := e.profiles.Profile(ctx, c.Latitude, c.Longitude)
	if err != nil {
		return e.classify(c, fmt.Errorf("fetching resource profile: %w", err))
	}

	gen := config.Generators[c.GeneratorType]
	records, err := powerflow.Simulate(profile, powerflow.Input{
		SolarCapacityMW:     float64(c.SolarCapacityMW),
		StoragePowerMW:      float64(c.StoragePowerMW),
		GeneratorCapacityMW: float64(c.GeneratorCapacityMW),
		LoadMW:              c.DatacenterLoadMW,
		HeatRateBTUPerKWh:   gen.HeatRateBTUPerKWh,
	})
	if err != nil {
		return e.classify(c, err)
	}

	model, err := finance.NewModel(e.cost, c.GeneratorType,
		float64(c.SolarCapacityMW), float64(c.StoragePowerMW),
		float64(c.GeneratorCapacityMW), c.DatacenterLoadMW, records)
	if err != nil {
		return e.classify(c, err)
	}
	lcoe, err := model.LevelizedCost()
	if err != nil {
		return e.classify(c, err)
	}

	mix, err := powerflow.Mix(records)
	if err != nil {
		return e.classify(c, err)
	}

	e.log.V(logging.DEBUG).Info("case evaluated",
		"spec", c.SystemSpec(), "lcoe", lcoe, "renewableFraction", mix.RenewableFraction)

	return EvaluationResult{
		Case:              c,
		SystemSpec:        c.SystemSpec(),
		LevelizedCost:     lcoe,
		RenewableFraction: mix.RenewableFraction,
		Status:            StatusSuccess,
	}
}

// classify maps a collaborator error onto the failure taxonomy. Zero
// lifetime energy is distinguished from generic failures; everything else
// carries the raised message verbatim.
func (e *SimEvaluator) classify(c Case, err error) EvaluationResult {
	if errors.Is(err, finance.ErrZeroEnergy) {
		e.log.V(logging.DEBUG).Info("zero energy case", "spec", c.SystemSpec())
		return EvaluationResult{Case: c, Status: StatusDomainError, Message: zeroEnergyReason}
	}
	e.log.Error(err, "case evaluation failed", "spec", c.SystemSpec())
	return EvaluationResult{Case: c, Status: StatusUnknownError, Message: err.Error()}
}

// validateCase rejects configurations that must not reach the simulator.
func validateCase(c Case) string {
	switch {
	case c.DatacenterLoadMW <= 0:
		return "invalid: datacenter_load_mw <= 0"
	case c.SolarCapacityMW < 0:
		return "invalid: solar_capacity_mw < 0"
	case c.StoragePowerMW < 0:
		return "invalid: storage_power_mw < 0"
	case c.GeneratorCapacityMW < 0:
		return "invalid: generator_capacity_mw < 0"
	}
	if _, ok := config.Generators[c.GeneratorType]; !ok {
		return fmt.Sprintf("invalid: unknown generator_type %q", c.GeneratorType)
	}
	return ""
}
