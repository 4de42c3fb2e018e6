package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadSweep reads a sweep configuration from a YAML file and validates it.
func LoadSweep(path string) (*SweepConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("generator_type", GasEngine)
	v.SetDefault("datacenter_load_mw", 100)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading sweep config %s: %w", path, err)
	}

	var cfg SweepConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding sweep config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadCost reads cost assumptions from a YAML file, overlaying the built-in
// defaults. An empty path returns the defaults unchanged.
func LoadCost(path string) (*CostConfig, error) {
	cfg := DefaultCostConfig()
	if path == "" {
		return &cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setCostDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading cost config %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding cost config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setCostDefaults(v *viper.Viper, d CostConfig) {
	v.SetDefault("solar_capex_per_w", d.SolarCapexPerW)
	v.SetDefault("bess_capex_per_kwh", d.BESSCapexPerKWh)
	v.SetDefault("system_integration_capex_per_kw", d.SystemIntegrationCapexPerKW)
	v.SetDefault("soft_costs_pct", d.SoftCostsPct)
	v.SetDefault("fuel_price_per_mmbtu", d.FuelPricePerMMBtu)
	v.SetDefault("fuel_escalator_pct", d.FuelEscalatorPct)
	v.SetDefault("om_solar_fixed_per_kw", d.OMSolarFixedPerKW)
	v.SetDefault("om_bess_fixed_per_kw", d.OMBESSFixedPerKW)
	v.SetDefault("om_bos_fixed_per_kw_load", d.OMBOSFixedPerKWLoad)
	v.SetDefault("om_soft_pct", d.OMSoftPct)
	v.SetDefault("om_escalator_pct", d.OMEscalatorPct)
	v.SetDefault("investment_tax_credit_pct", d.InvestmentTaxCreditPct)
	v.SetDefault("cost_of_debt_pct", d.CostOfDebtPct)
	v.SetDefault("leverage_pct", d.LeveragePct)
	v.SetDefault("debt_term_years", d.DebtTermYears)
	v.SetDefault("cost_of_equity_pct", d.CostOfEquityPct)
	v.SetDefault("combined_tax_rate_pct", d.CombinedTaxRatePct)
	v.SetDefault("construction_years", d.ConstructionYears)
	v.SetDefault("depreciation_schedule", d.DepreciationSchedule)
	v.SetDefault("bess_hours_storage", d.BESSHoursStorage)
}
