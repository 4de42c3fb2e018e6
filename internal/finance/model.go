// Package finance computes the levelized cost of energy for a simulated
// system by building a lifetime pro-forma and solving for the energy price
// that zeroes the after-tax equity NPV.
package finance

import (
	"errors"
	"fmt"
	"math"

	"github.com/heliostack/dcsim/internal/config"
	"github.com/heliostack/dcsim/internal/powerflow"
)

// ErrZeroEnergy signals an economically undefined configuration: the system
// delivers no energy over its lifetime, so no price can recover its cost.
var ErrZeroEnergy = errors.New("zero lifetime energy")

// LCOE solver parameters.
const (
	lcoeLowerBound    = 50.0
	lcoeUpperBound    = 300.0
	lcoeTolerance     = 0.0001
	lcoeMaxIterations = 10000
)

// Model binds a system configuration, its cost assumptions, and its
// simulated operating records for LCOE computation.
type Model struct {
	cfg config.CostConfig
	gen config.GeneratorSpec

	solarMW     float64
	storageMW   float64
	generatorMW float64
	loadMW      float64

	records []powerflow.AnnualRecord
}

// NewModel validates the generator type and returns a Model.
func NewModel(
	cfg config.CostConfig,
	generatorType string,
	solarMW, storageMW, generatorMW, loadMW float64,
	records []powerflow.AnnualRecord,
) (*Model, error) {
	gen, ok := config.Generators[generatorType]
	if !ok {
		return nil, fmt.Errorf("unknown generator type %q", generatorType)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("no operating records")
	}
	return &Model{
		cfg:         cfg,
		gen:         gen,
		solarMW:     solarMW,
		storageMW:   storageMW,
		generatorMW: generatorMW,
		loadMW:      loadMW,
		records:     records,
	}, nil
}

// LevelizedCost solves for the $/MWh price at which the equity NPV of the
// project is zero, using Newton's method with a numeric derivative.
func (m *Model) LevelizedCost() (float64, error) {
	var lifetimeServed float64
	for _, r := range m.records {
		lifetimeServed += r.LoadServedMWh
	}
	if lifetimeServed <= 0 {
		return 0, fmt.Errorf("levelized cost undefined: %w", ErrZeroEnergy)
	}

	guess := (lcoeLowerBound + lcoeUpperBound) / 2
	for i := 0; i < lcoeMaxIterations; i++ {
		npv := m.equityNPV(guess)
		if math.Abs(npv) < lcoeTolerance {
			return guess, nil
		}

		delta := guess * 0.001
		derivative := (m.equityNPV(guess+delta) - npv) / delta
		if derivative == 0 {
			return 0, fmt.Errorf("levelized cost solve stalled at %.4f: flat NPV", guess)
		}

		next := guess - npv/derivative
		if next <= 0 {
			guess = guess / 2
		} else {
			guess = next
		}
	}
	return guess, nil
}

// equityNPV evaluates the after-tax net equity cash flow NPV at the given
// LCOE, in $M. Cash flows run from the first construction year through the
// end of life, discounted at the cost of equity.
func (m *Model) equityNPV(lcoe float64) float64 {
	c := &m.cfg

	// CAPEX ($M)
	solarCapex := c.SolarCapexPerW * m.solarMW
	bessCapex := c.BESSCapexPerKWh * m.storageMW * c.BESSHoursStorage / 1000
	generatorCapex := m.gen.CapexPerKW * m.generatorMW / 1000
	integrationCapex := c.SystemIntegrationCapexPerKW * m.loadMW / 1000

	hardCapex := solarCapex + bessCapex + generatorCapex + integrationCapex
	totalCapex := hardCapex * (1 + c.SoftCostsPct/100)
	totalDebt := totalCapex * c.LeveragePct / 100
	debtRate := c.CostOfDebtPct / 100

	termFactor := math.Pow(1+debtRate, float64(c.DebtTermYears))
	fixedDebtPayment := totalDebt * debtRate * termFactor / (termFactor - 1)

	// The ITC applies to the renewable share of the build; half of it
	// reduces the depreciable basis.
	renewableShare := (solarCapex + bessCapex) / hardCapex
	taxCredit := totalCapex * renewableShare * c.InvestmentTaxCreditPct / 100
	depreciable := totalCapex - taxCredit/2

	equityRate := c.CostOfEquityPct / 100
	discount := func(year int) float64 {
		return math.Pow(1+equityRate, float64(year+c.ConstructionYears))
	}

	npv := 0.0

	// Construction period: equity share of capex, spread evenly.
	capexPerYear := totalCapex / float64(c.ConstructionYears)
	equityShare := 1 - c.LeveragePct/100
	for year := -c.ConstructionYears + 1; year <= 0; year++ {
		npv += -capexPerYear * equityShare / discount(year)
	}

	// Operating period.
	debtOutstanding := totalDebt
	for _, r := range m.records {
		year := r.Year
		omEscalation := math.Pow(1+c.OMEscalatorPct/100, float64(year-1))
		fuelEscalation := math.Pow(1+c.FuelEscalatorPct/100, float64(year-1))

		fuelCost := -c.FuelPricePerMMBtu * fuelEscalation * r.FuelMMBtu / 1_000_000
		fixedOM := -(c.OMSolarFixedPerKW*m.solarMW+
			c.OMBESSFixedPerKW*m.storageMW+
			m.gen.FixedOMPerKW*m.generatorMW+
			c.OMBOSFixedPerKWLoad*m.loadMW)*1000*omEscalation/1_000_000 -
			c.OMSoftPct/100*omEscalation*hardCapex
		variableOM := -m.gen.VariableOMPerKWh * omEscalation * r.GeneratorMWh * 1000 / 1_000_000
		operatingCosts := fuelCost + fixedOM + variableOM

		revenue := lcoe * r.LoadServedMWh / 1_000_000
		ebitda := revenue + operatingCosts

		interest := 0.0
		debtService := 0.0
		if year <= c.DebtTermYears {
			interest = -debtOutstanding * debtRate
			debtService = -fixedDebtPayment
			debtOutstanding += debtService - interest
		}

		depreciationPct := 0.0
		if year <= len(c.DepreciationSchedule) {
			depreciationPct = c.DepreciationSchedule[year-1]
		}
		depreciation := -depreciationPct / 100 * depreciable

		taxableIncome := ebitda + depreciation + interest
		taxBenefit := -taxableIncome * c.CombinedTaxRatePct / 100
		if year == 1 {
			taxBenefit += taxCredit
		}

		npv += (ebitda + debtService + taxBenefit) / discount(year)
	}

	return npv
}
