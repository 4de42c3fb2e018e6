package config

import "fmt"

// Generator type names accepted in sweep and cost configuration.
const (
	GasEngine  = "Gas Engine"
	GasTurbine = "Gas Turbine"
)

// GeneratorSpec holds the per-type generator cost and performance figures.
type GeneratorSpec struct {
	// HeatRateBTUPerKWh converts generator output to fuel input.
	HeatRateBTUPerKWh float64
	// CapexPerKW is the installed cost subtotal (gensets, BOS, labor).
	CapexPerKW float64
	// FixedOMPerKW is annual fixed O&M in $/kW-yr.
	FixedOMPerKW float64
	// VariableOMPerKWh is variable O&M in $/kWh generated.
	VariableOMPerKWh float64
}

// Generators is the built-in generator catalog.
var Generators = map[string]GeneratorSpec{
	GasEngine: {
		HeatRateBTUPerKWh: 8989,
		CapexPerKW:        1150, // 800 gensets + 200 BOS + 150 labor
		FixedOMPerKW:      10.00,
		VariableOMPerKWh:  0.025,
	},
	GasTurbine: {
		HeatRateBTUPerKWh: 9630,
		CapexPerKW:        885, // 635 gensets + 150 BOS + 100 labor
		FixedOMPerKW:      15.00,
		VariableOMPerKWh:  0.005,
	},
}

// CostConfig holds every financial input of the LCOE model. Zero values are
// never meaningful; construct via DefaultCostConfig or the loader.
type CostConfig struct {
	// CAPEX subtotal rates
	SolarCapexPerW              float64 `yaml:"solar_capex_per_w" mapstructure:"solar_capex_per_w"`
	BESSCapexPerKWh             float64 `yaml:"bess_capex_per_kwh" mapstructure:"bess_capex_per_kwh"`
	SystemIntegrationCapexPerKW float64 `yaml:"system_integration_capex_per_kw" mapstructure:"system_integration_capex_per_kw"`
	SoftCostsPct                float64 `yaml:"soft_costs_pct" mapstructure:"soft_costs_pct"`

	// O&M inputs
	FuelPricePerMMBtu   float64 `yaml:"fuel_price_per_mmbtu" mapstructure:"fuel_price_per_mmbtu"`
	FuelEscalatorPct    float64 `yaml:"fuel_escalator_pct" mapstructure:"fuel_escalator_pct"`
	OMSolarFixedPerKW   float64 `yaml:"om_solar_fixed_per_kw" mapstructure:"om_solar_fixed_per_kw"`
	OMBESSFixedPerKW    float64 `yaml:"om_bess_fixed_per_kw" mapstructure:"om_bess_fixed_per_kw"`
	OMBOSFixedPerKWLoad float64 `yaml:"om_bos_fixed_per_kw_load" mapstructure:"om_bos_fixed_per_kw_load"`
	OMSoftPct           float64 `yaml:"om_soft_pct" mapstructure:"om_soft_pct"`
	OMEscalatorPct      float64 `yaml:"om_escalator_pct" mapstructure:"om_escalator_pct"`

	// Financial inputs
	InvestmentTaxCreditPct float64   `yaml:"investment_tax_credit_pct" mapstructure:"investment_tax_credit_pct"`
	CostOfDebtPct          float64   `yaml:"cost_of_debt_pct" mapstructure:"cost_of_debt_pct"`
	LeveragePct            float64   `yaml:"leverage_pct" mapstructure:"leverage_pct"`
	DebtTermYears          int       `yaml:"debt_term_years" mapstructure:"debt_term_years"`
	CostOfEquityPct        float64   `yaml:"cost_of_equity_pct" mapstructure:"cost_of_equity_pct"`
	CombinedTaxRatePct     float64   `yaml:"combined_tax_rate_pct" mapstructure:"combined_tax_rate_pct"`
	ConstructionYears      int       `yaml:"construction_years" mapstructure:"construction_years"`
	DepreciationSchedule   []float64 `yaml:"depreciation_schedule" mapstructure:"depreciation_schedule"`

	// BESSHoursStorage converts battery power (MW) to energy (MWh).
	BESSHoursStorage float64 `yaml:"bess_hours_storage" mapstructure:"bess_hours_storage"`
}

// DefaultCostConfig returns the built-in cost assumptions.
func DefaultCostConfig() CostConfig {
	return CostConfig{
		SolarCapexPerW:              0.770, // modules, inverters, racking, BOS, labor
		BESSCapexPerKWh:             260,   // units, BOS, labor
		SystemIntegrationCapexPerKW: 410,   // microgrid, controls, labor
		SoftCostsPct:                11.80,

		FuelPricePerMMBtu:   5.00,
		FuelEscalatorPct:    3.00,
		OMSolarFixedPerKW:   11,
		OMBESSFixedPerKW:    2.5,
		OMBOSFixedPerKWLoad: 6.0,
		OMSoftPct:           0.25,
		OMEscalatorPct:      2.50,

		InvestmentTaxCreditPct: 30.0,
		CostOfDebtPct:          7.5,
		LeveragePct:            70.0,
		DebtTermYears:          20,
		CostOfEquityPct:        11.0,
		CombinedTaxRatePct:     21.0,
		ConstructionYears:      2,
		DepreciationSchedule: []float64{
			20.0, 32.0, 19.20, 11.52, 11.52, 5.76, // MACRS 5-year
		},

		BESSHoursStorage: 4,
	}
}

// Validate checks for cost inputs that would make the pro-forma undefined.
func (c *CostConfig) Validate() error {
	if c.ConstructionYears < 1 {
		return &InputValidationError{Field: "construction_years", Reason: "must be >= 1"}
	}
	if c.DebtTermYears < 1 {
		return &InputValidationError{Field: "debt_term_years", Reason: "must be >= 1"}
	}
	if c.CostOfDebtPct <= 0 {
		return &InputValidationError{Field: "cost_of_debt_pct", Reason: "must be > 0"}
	}
	if c.LeveragePct < 0 || c.LeveragePct > 100 {
		return &InputValidationError{Field: "leverage_pct", Reason: fmt.Sprintf("must be within [0, 100], got %g", c.LeveragePct)}
	}
	if c.BESSHoursStorage <= 0 {
		return &InputValidationError{Field: "bess_hours_storage", Reason: "must be > 0"}
	}
	return nil
}
